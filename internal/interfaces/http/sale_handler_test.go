package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Limites abertos: só to, só from, ou os dois.
func TestParsePeriod_LimitesAbertos(t *testing.T) {
	// Só to: from vira o início dos tempos.
	from, to, err := parsePeriod("", "2026-08-28")
	require.NoError(t, err)
	assert.True(t, from.IsZero(), "from vazio é aberto")
	assert.Equal(t, 2026, to.Year())
	assert.Equal(t, 23, to.Hour(), "data simples no to vira fim do dia")

	// Só from: to vira agora.
	from, to, err = parsePeriod("2026-08-01", "")
	require.NoError(t, err)
	assert.Equal(t, time.August, from.Month())
	assert.WithinDuration(t, time.Now(), to, time.Minute)

	// Os dois, em RFC 3339.
	from, to, err = parsePeriod("2026-08-01T00:00:00Z", "2026-08-28T12:00:00Z")
	require.NoError(t, err)
	assert.True(t, from.Before(to))
}

func TestParsePeriod_ValorInvalido(t *testing.T) {
	_, _, err := parsePeriod("ontem", "")
	assert.Error(t, err)

	_, _, err = parsePeriod("", "28/08/2026")
	assert.Error(t, err)
}
