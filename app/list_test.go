package app

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ayoisaiah/slumber/stats"
)

func TestListSessionsEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, listSessions(&buf, nil, false))
	assert.Equal(t, stats.NoSessionsMsg+"\n", buf.String())
}
