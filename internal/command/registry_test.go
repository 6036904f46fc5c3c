package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nopHandler(ctx context.Context, args *Args) error { return nil }

func TestRegistry_ResolvesNameAndAllAliases(t *testing.T) {
	spec := MustNew(`testing: testing the cli api

Aliases: a, b, c`, nopHandler)

	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(spec))

	for _, token := range []string{"testing", "a", "b", "c"} {
		got, err := reg.Resolve(token)
		require.NoError(t, err, "token %s", token)
		assert.Same(t, spec, got, "token %s", token)
	}
}

func TestRegistry_DuplicateNameIsConfigError(t *testing.T) {
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`commit: save work`, nopHandler)))

	err := reg.Register(MustNew(`commit: save work again`, nopHandler))

	assert.ErrorIs(t, err, ErrDuplicateCommand)
}

func TestRegistry_DuplicateAliasIsConfigError(t *testing.T) {
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`commit: save work

Aliases: c`, nopHandler)))

	err := reg.Register(MustNew(`checkout: switch branches

Aliases: c`, nopHandler))

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrDuplicateCommand)
	assert.Contains(t, err.Error(), `"c"`)
}

func TestRegistry_FailedRegistrationLeavesNoPartialKeys(t *testing.T) {
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`commit: save work`, nopHandler)))

	// Alias list collides on its second entry; neither key may stick.
	err := reg.Register(MustNew(`checkout: switch branches

Aliases: co, commit`, nopHandler))
	require.ErrorIs(t, err, ErrDuplicateCommand)

	_, err = reg.Resolve("co")
	assert.ErrorIs(t, err, ErrUnknownCommand)
	_, err = reg.Resolve("checkout")
	assert.ErrorIs(t, err, ErrUnknownCommand)
}

func TestRegistry_UnknownCommandRunsNoHandler(t *testing.T) {
	ran := false
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`commit: save work`, func(ctx context.Context, args *Args) error {
		ran = true
		return nil
	})))

	err := reg.Dispatch(context.Background(), "comit", nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "comit")
	assert.False(t, ran)

	var uerr *UsageError
	require.ErrorAs(t, err, &uerr)
	assert.Nil(t, uerr.Spec)
}

func TestRegistry_DispatchByAlias(t *testing.T) {
	ran := false
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`commit: save work

Aliases: c`, func(ctx context.Context, args *Args) error {
		ran = true
		return nil
	})))

	require.NoError(t, reg.Dispatch(context.Background(), "c", nil))
	assert.True(t, ran)
}

func TestRegistry_HandlerErrorPropagatesUnmodified(t *testing.T) {
	handlerErr := errors.New("push failed")
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`commit: save work`, func(ctx context.Context, args *Args) error {
		return handlerErr
	})))

	err := reg.Dispatch(context.Background(), "commit", nil)

	assert.Same(t, handlerErr, err)

	var uerr *UsageError
	assert.False(t, errors.As(err, &uerr))
}

func TestRegistry_SealsOnFirstDispatch(t *testing.T) {
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`commit: save work`, nopHandler)))

	_ = reg.Dispatch(context.Background(), "commit", nil)

	err := reg.Register(MustNew(`late: too late`, nopHandler))
	assert.ErrorIs(t, err, ErrRegistrySealed)
}

func TestRegistry_CommandsSortedByName(t *testing.T) {
	reg := NewRegistry("geet")
	require.NoError(t, reg.Register(MustNew(`update: pull changes`, nopHandler)))
	require.NoError(t, reg.Register(MustNew(`commit: save work`, nopHandler)))

	specs := reg.Commands()

	require.Len(t, specs, 2)
	assert.Equal(t, "commit", specs[0].Name)
	assert.Equal(t, "update", specs[1].Name)
}

func TestMustNew_PanicsOnMalformedDeclaration(t *testing.T) {
	assert.Panics(t, func() {
		MustNew(`broken docstring with no separator`, nopHandler)
	})
}
