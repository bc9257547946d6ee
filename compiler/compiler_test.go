package compiler_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nocc-go/nocc/compiler"
)

func TestCompileFileParsesOilModule(t *testing.T) {
	src := []byte("def greet():\n    pass\n")
	res, err := compiler.CompileFile("hello.oil", src, compiler.DefaultStages())
	require.NoError(t, err)
	require.NotNil(t, res.Root)
	require.False(t, res.Diag.HasErrors())
}

func TestCompileFileUnknownExtensionReportsDiagnostic(t *testing.T) {
	res, err := compiler.CompileFile("hello.nope", []byte("x"), compiler.DefaultStages())
	require.Error(t, err)
	require.True(t, res.Diag.HasErrors())
	require.Nil(t, res.Root)
}
