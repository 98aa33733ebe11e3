package sequence_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/manufactura-api/internal/domain/sequence"
)

// TestFormat verifica el padding a 3 dígitos y el ensanchamiento pasado 999.
func TestFormat(t *testing.T) {
	cases := []struct {
		prefix string
		n      int64
		want   string
	}{
		{sequence.ProductPrefix, 1, "P001"},
		{sequence.ProductPrefix, 14, "P014"},
		{sequence.SupplierPrefix, 1, "S001"},
		{sequence.ProductPrefix, 999, "P999"},
		{sequence.ProductPrefix, 1000, "P1000"},
		{sequence.ProductPrefix, 12345, "P12345"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sequence.Format(c.prefix, c.n),
			"Format(%q, %d)", c.prefix, c.n)
	}
}
