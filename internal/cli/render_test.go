package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/geocoder89/userdesk/internal/domain/user"
	"github.com/geocoder89/userdesk/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type stubFetcher struct {
	users []user.User
	err   error
}

func (s stubFetcher) Fetch(ctx context.Context) ([]user.User, error) {
	return s.users, s.err
}

func runRender(t *testing.T, f view.Fetcher, args ...string) (string, string, error) {
	t.Helper()

	prev := newFetcher
	var gotURL string
	newFetcher = func(url string) view.Fetcher {
		gotURL = url
		return f
	}
	t.Cleanup(func() { newFetcher = prev })

	var out, errOut bytes.Buffer
	cmd := newRenderCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--url", "http://users.test/users"}, args...))

	err := cmd.Execute()
	assert.Equal(t, "http://users.test/users", gotURL)

	return out.String(), errOut.String(), err
}

func users() []user.User {
	return []user.User{
		{ID: 1, FirstName: "Emily", LastName: "Johnson", Gender: "female", Age: 28, Email: "emily@x.io", Company: user.Company{Name: "Dooley"}},
		{ID: 2, FirstName: "Michael", LastName: "Williams", Gender: "male", Age: 35, Email: "michael@x.io", Company: user.Company{Name: "Spinka"}},
	}
}

func TestRenderTable(t *testing.T) {
	out, _, err := runRender(t, stubFetcher{users: users()})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[1], "Emily Johnson")
	assert.Contains(t, lines[2], "Spinka")
}

func TestRenderYAML(t *testing.T) {
	out, _, err := runRender(t, stubFetcher{users: users()}, "-o", "yaml")
	require.NoError(t, err)

	var got []user.User
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	assert.Equal(t, users(), got)
	assert.Contains(t, out, "firstName: Emily")
}

func TestRenderJSON(t *testing.T) {
	out, _, err := runRender(t, stubFetcher{users: users()}, "--format", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"company": {`)
}

func TestRenderFetchFailurePrintsEmptyTable(t *testing.T) {
	out, errOut, err := runRender(t, stubFetcher{err: errors.New("connection refused")})
	require.NoError(t, err)

	assert.Equal(t, 1, len(strings.Split(strings.TrimSpace(out), "\n")), "only the header row")
	assert.Contains(t, errOut, "fetch users failed")
}

func TestRenderUnknownFormat(t *testing.T) {
	_, _, err := runRender(t, stubFetcher{users: users()}, "-o", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"version"})
	t.Cleanup(func() { rootCmd.SetOut(nil); rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, "userctl dev\n", out.String())
}
