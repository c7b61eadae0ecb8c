package numbering_test

import (
	"regexp"
	"testing"

	"github.com/openbooks-app/openbooks_backend/internal/utils/numbering"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReference_Format(t *testing.T) {
	ref, err := numbering.GenerateReference(numbering.PaymentPrefix)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^PMT-[0-9A-F]{8}$`), ref)

	ref, err = numbering.GenerateReference(numbering.BillPaymentPrefix)
	require.NoError(t, err)
	assert.Regexp(t, regexp.MustCompile(`^BP-[0-9A-F]{8}$`), ref)
}

func TestGenerateReference_EmptyPrefix(t *testing.T) {
	_, err := numbering.GenerateReference("")
	assert.Error(t, err)
}

func TestGenerateReference_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		ref, err := numbering.GenerateReference(numbering.PaymentPrefix)
		require.NoError(t, err)
		assert.False(t, seen[ref], "duplicate reference %s", ref)
		seen[ref] = true
	}
}
