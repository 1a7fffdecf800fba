package artifact_source

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
)

type staticTokenSource struct {
	tokens []*oauth2.Token
	calls  int
}

func (s *staticTokenSource) Token() (*oauth2.Token, error) {
	tok := s.tokens[s.calls]
	if s.calls < len(s.tokens)-1 {
		s.calls++
	}
	return tok, nil
}

func TestSaveAndLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my_creds.json")

	_, err := LoadToken(path)
	assert.ErrorIs(t, err, ErrNoToken)

	expiry := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, SaveToken(path, &oauth2.Token{AccessToken: "a", RefreshToken: "r", Expiry: expiry}))

	got, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "a", got.AccessToken)
	assert.Equal(t, "r", got.RefreshToken)
	assert.True(t, expiry.Equal(got.Expiry))
}

func TestPersistingTokenSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "my_creds.json")
	initial := &oauth2.Token{AccessToken: "a", RefreshToken: "r"}
	refreshed := &oauth2.Token{AccessToken: "b", RefreshToken: "r"}

	ts := &persistingTokenSource{
		base: &staticTokenSource{tokens: []*oauth2.Token{initial, refreshed}},
		path: path,
		last: initial,
	}

	// unchanged token is not written
	_, err := ts.Token()
	require.NoError(t, err)
	_, err = LoadToken(path)
	assert.ErrorIs(t, err, ErrNoToken)

	// refreshed token is saved
	got, err := ts.Token()
	require.NoError(t, err)
	assert.Equal(t, "b", got.AccessToken)

	saved, err := LoadToken(path)
	require.NoError(t, err)
	assert.Equal(t, "b", saved.AccessToken)
}
