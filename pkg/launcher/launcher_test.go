package launcher

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/launchdeck/pkg/core"
)

type call struct {
	name string
	args []string
}

func recorder(calls *[]call, err error) Runner {
	return func(ctx context.Context, name string, args ...string) ([]byte, error) {
		*calls = append(*calls, call{name: name, args: args})
		return []byte("output"), err
	}
}

func TestOS_Command(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs []string
		wantErr  error
	}{
		{"darwin", "open", []string{"/Applications/Chrome.app"}, nil},
		{"linux", "xdg-open", []string{"/Applications/Chrome.app"}, nil},
		{"windows", "rundll32", []string{"url.dll,FileProtocolHandler", "/Applications/Chrome.app"}, nil},
		{"plan9", "", nil, ErrUnsupportedPlatform},
	}

	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			l, err := New(WithGOOS(tt.goos))
			require.NoError(t, err)

			name, args, err := l.Command("/Applications/Chrome.app")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantName, name)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestOS_CommandNeverUsesShell(t *testing.T) {
	for _, goos := range []string{"darwin", "linux", "windows", "freebsd"} {
		t.Run(goos, func(t *testing.T) {
			l, err := New(WithGOOS(goos))
			require.NoError(t, err)

			target := `notes.txt&calc.exe|whoami`
			name, args, err := l.Command(target)
			require.NoError(t, err)
			assert.NotContains(t, []string{"cmd", "cmd.exe", "sh", "bash", "powershell"}, name)
			assert.Equal(t, target, args[len(args)-1], "target must be one untouched argument")
		})
	}
}

func TestOS_Open(t *testing.T) {
	ctx := context.Background()

	t.Run("runs the platform command", func(t *testing.T) {
		var calls []call
		l, err := New(WithGOOS("linux"), WithRunner(recorder(&calls, nil)))
		require.NoError(t, err)

		require.NoError(t, l.Open(ctx, " /home/me/projects "))
		require.Len(t, calls, 1)
		assert.Equal(t, call{name: "xdg-open", args: []string{"/home/me/projects"}}, calls[0])
	})

	t.Run("shell metacharacters stay a single argument", func(t *testing.T) {
		var calls []call
		l, err := New(WithGOOS("darwin"), WithRunner(recorder(&calls, nil)))
		require.NoError(t, err)

		require.NoError(t, l.Open(ctx, "/tmp/x; rm -rf ~"))
		assert.Equal(t, []string{"/tmp/x; rm -rf ~"}, calls[0].args)
	})

	t.Run("empty target", func(t *testing.T) {
		var calls []call
		l, err := New(WithRunner(recorder(&calls, nil)))
		require.NoError(t, err)

		assert.ErrorIs(t, l.Open(ctx, "  "), core.ErrValidation)
		assert.Empty(t, calls)
	})

	t.Run("unsupported platform", func(t *testing.T) {
		var calls []call
		l, err := New(WithGOOS("aix"), WithRunner(recorder(&calls, nil)))
		require.NoError(t, err)

		assert.ErrorIs(t, l.Open(ctx, "/x"), ErrUnsupportedPlatform)
		assert.Empty(t, calls)
	})

	t.Run("command failure", func(t *testing.T) {
		var calls []call
		l, err := New(WithGOOS("linux"), WithRunner(recorder(&calls, errors.New("exit status 4"))))
		require.NoError(t, err)

		assert.ErrorIs(t, l.Open(ctx, "/missing"), ErrLaunchFailed)
	})
}

func TestOS_AllowList(t *testing.T) {
	var calls []call
	l, err := New(
		WithGOOS("linux"),
		WithRunner(recorder(&calls, nil)),
		WithAllow("/home/me/**", "/usr/bin/*"),
	)
	require.NoError(t, err)
	ctx := context.Background()

	assert.NoError(t, l.Open(ctx, "/home/me/projects/launchdeck"))
	assert.NoError(t, l.Open(ctx, "/usr/bin/code"))
	assert.ErrorIs(t, l.Open(ctx, "/etc/passwd"), ErrNotAllowed)
	assert.ErrorIs(t, l.Open(ctx, "/usr/bin/local/tool"), ErrNotAllowed)
	assert.Len(t, calls, 2)

	_, err = New(WithAllow("/home/[me"))
	assert.Error(t, err, "malformed pattern must be rejected")
}
