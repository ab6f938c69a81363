package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const salesCSV = "FechaPedidoServerN,NoPedidoStr,Cliente,Vendedor,Descripcion,Cantidad,Total Vendido\n" +
	"05/01/2024,P1,Alfa,Ana,Caneta,2,500\n" +
	"20/01/2024,P2,Beta,Bruno,Lapis,1,300\n" +
	"03/02/2024,P3,Gama,Ana,Caneta,1,100\n" +
	"10/02/2024,P4,Delta,Bruno,Borracha,3,100\n"

func writeSalesFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ventas.csv")
	require.NoError(t, os.WriteFile(path, []byte(salesCSV), 0o600))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestReportCommand(t *testing.T) {
	out, err := execute(t, "report", "--file", writeSalesFile(t))

	require.NoError(t, err)
	assert.Contains(t, out, `"total_amount": 1000`)
	assert.Contains(t, out, `"file_name": "ventas.csv"`)
	assert.Contains(t, out, `"class": "C"`)
}

func TestKPIsCommand_Table(t *testing.T) {
	out, err := execute(t, "kpis", "-f", writeSalesFile(t), "--seller", "Ana", "-o", "table")

	require.NoError(t, err)
	assert.Contains(t, out, "Valor total")
	assert.Contains(t, out, "600.00")
}

func TestABCCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected []string
		wantErr  bool
	}{
		{
			name:     "Classificação por vendedor",
			args:     []string{"abc", "seller"},
			expected: []string{`"key": "Ana"`, `"key": "Bruno"`},
		},
		{
			name:     "Todas as chaves",
			args:     []string{"abc", "--all"},
			expected: []string{`"client"`, `"product"`, `"seller"`},
		},
		{
			name:     "Tabela",
			args:     []string{"abc", "product", "-o", "table"},
			expected: []string{"Caneta", "Classe"},
		},
		{
			name:    "Chave desconhecida",
			args:    []string{"abc", "cidade"},
			wantErr: true,
		},
		{
			name:    "Intervalo invertido",
			args:    []string{"abc", "--start", "2024-03-01", "--end", "2024-01-01"},
			wantErr: true,
		},
		{
			name:    "Limites ABC inválidos",
			args:    []string{"abc", "--threshold-a", "96"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := execute(t, append(tt.args, "--file", writeSalesFile(t))...)

			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			for _, expected := range tt.expected {
				assert.Contains(t, out, expected)
			}
		})
	}
}

func TestMissingFileFlag(t *testing.T) {
	_, err := execute(t, "kpis")
	assert.Error(t, err)
}
