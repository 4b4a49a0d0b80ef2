package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/iconsmith-cli/internal/core/domain"
)

func TestResolveDeepestField(t *testing.T) {
	r := NewResolver()

	row := domain.CategoryRow{
		Catid: "100",
		Fields: map[string]string{
			domain.ColumnRoot: "Gereedschap",
			domain.ColumnSub1: "Boren",
			domain.ColumnSub3: "Accuboormachines",
		},
	}

	subject, err := r.Resolve(row)
	require.NoError(t, err)
	assert.Equal(t, "Accuboormachines", subject, "deepest wins even across a gap")
}

func TestResolveSkipsWhitespaceOnlyFields(t *testing.T) {
	r := NewResolver()

	row := domain.CategoryRow{
		Catid: "100",
		Fields: map[string]string{
			domain.ColumnRoot: "Gereedschap",
			domain.ColumnSub5: "   ",
		},
	}

	subject, err := r.Resolve(row)
	require.NoError(t, err)
	assert.Equal(t, "Gereedschap", subject)
}

func TestResolveNoSubject(t *testing.T) {
	r := NewResolver()

	_, err := r.Resolve(domain.CategoryRow{Catid: "100"})
	require.ErrorIs(t, err, domain.ErrNoSubject)
	assert.Contains(t, err.Error(), "100")
}

func TestResolveNeverConcatenates(t *testing.T) {
	r := NewResolver()

	row := domain.CategoryRow{
		Catid: "100",
		Fields: map[string]string{
			domain.ColumnRoot: "Kantoor",
			domain.ColumnSub1: "Printers",
		},
	}

	subject, err := r.Resolve(row)
	require.NoError(t, err)
	assert.Equal(t, "Printers", subject)
}
