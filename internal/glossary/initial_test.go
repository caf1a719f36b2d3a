package glossary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFoldInitial(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Álgebra", "ALGEBRA"},
		{"ângulo", "ANGULO"},
		{"Função", "FUNCAO"},
		{"é", "E"}, // already decomposed
		{"", ""},
		{"π", "Π"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, FoldInitial(tt.in))
		})
	}
}

func TestHasInitial(t *testing.T) {
	assert.True(t, HasInitial("Álgebra", "a"))
	assert.True(t, HasInitial("álgebra", "A"))
	assert.True(t, HasInitial("Ângulo", "Á"))
	assert.True(t, HasInitial("Cálculo", ""))
	assert.False(t, HasInitial("Base", "a"))
	assert.False(t, HasInitial("", "a"))
}

func TestFilterByInitial(t *testing.T) {
	terms := []Term{
		{ID: 1, Term: "Álgebra"},
		{ID: 2, Term: "Base"},
		{ID: 3, Term: "ângulo"},
		{ID: 4, Term: "Área"},
		{ID: 5, Term: "Cálculo"},
	}

	t.Run("strips accents and ignores case", func(t *testing.T) {
		got := FilterByInitial(terms, "a")
		assert.Equal(t, []int64{1, 3, 4}, ids(got))
	})

	t.Run("accented letter matches plain terms", func(t *testing.T) {
		got := FilterByInitial(terms, "Ç")
		assert.Equal(t, []int64{5}, ids(got))
	})

	t.Run("empty letter keeps everything", func(t *testing.T) {
		assert.Equal(t, terms, FilterByInitial(terms, ""))
	})

	t.Run("no match", func(t *testing.T) {
		assert.Empty(t, FilterByInitial(terms, "z"))
	})
}

func ids(terms []Term) []int64 {
	out := make([]int64, len(terms))
	for i, t := range terms {
		out[i] = t.ID
	}
	return out
}
