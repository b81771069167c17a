package secrets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntryPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		key     string
		want    string
		wantErr bool
	}{
		{key: "pchat://work/session_token", want: "pchat/work/session_token"},
		{key: " pchat://default/session_token\n", want: "pchat/default/session_token"},
		{key: "plain/name", want: "plain/name"},
		{key: "", wantErr: true},
		{key: "/etc/passwd", wantErr: true},
		{key: "../escape", wantErr: true},
		{key: "pchat://../../escape", wantErr: true},
	}

	for _, tt := range tests {
		got, err := EntryPath(tt.key)
		if tt.wantErr {
			require.Error(t, err, tt.key)
			continue
		}
		require.NoError(t, err, tt.key)
		assert.Equal(t, tt.want, got)
	}
}
