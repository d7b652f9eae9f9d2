package modelbridge

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/modelbridge/core"
	"github.com/hupe1980/modelbridge/internal/testutil"
	"github.com/hupe1980/modelbridge/session"
)

func newTestClient(backend *testutil.FakeBackend) *Client {
	return New("https://models.example.com", func(o *Options) {
		o.Transport = backend
	})
}

func TestClient_LoginResolveInvoke(t *testing.T) {
	backend := testutil.NewFakeBackend().WithService(testutil.CarService())
	client := newTestClient(backend)
	ctx := context.Background()

	// any resolution before login fails locally
	_, err := client.Resolve(ctx, "car-service", "v1.0.0")
	require.ErrorIs(t, err, core.ErrSessionInvalid)
	assert.Zero(t, backend.DescribeCalls)

	require.NoError(t, client.Login(ctx, session.UserPassword{Username: "alice", Password: "s3cret"}, false))

	proxy, err := client.Resolve(ctx, "car-service", "v1.0.0")
	require.NoError(t, err)

	res, err := proxy.Invoke(ctx, 120, 2.8)
	require.NoError(t, err)

	tbl, err := res.Table("answer")
	require.NoError(t, err)
	row, err := tbl.Row(0)
	require.NoError(t, err)
	assert.EqualValues(t, 1, row["am"])
}

func TestClient_InvokeSyncRetainsArtifacts(t *testing.T) {
	backend := testutil.NewFakeBackend().WithService(testutil.CarService())
	client := newTestClient(backend)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx, session.UserPassword{Username: "alice", Password: "s3cret"}, false))

	res, err := client.InvokeSync(ctx, "car-service", "v1.0.0", 120, 2.8)
	require.NoError(t, err)

	retained, err := client.Artifacts().Get(res.ID(), "image.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("\x89PNG"), retained)

	names, err := client.Artifacts().List(res.ID())
	require.NoError(t, err)
	assert.Equal(t, []string{"image.png"}, names)
}

func TestClient_LogoutInvalidatesSession(t *testing.T) {
	backend := testutil.NewFakeBackend().WithService(testutil.CarService())
	client := newTestClient(backend)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx, session.BearerToken{Token: "idp"}, true))
	require.NoError(t, client.Logout(ctx))

	_, err := client.InvokeSync(ctx, "car-service", "v1.0.0", 120, 2.8)
	require.ErrorIs(t, err, core.ErrSessionInvalid)
	assert.Zero(t, backend.InvokeCalls)
}

func TestClient_InvokeSyncUnknownService(t *testing.T) {
	backend := testutil.NewFakeBackend().WithService(testutil.CarService())
	client := newTestClient(backend)
	ctx := context.Background()

	require.NoError(t, client.Login(ctx, session.UserPassword{Username: "alice", Password: "s3cret"}, false))

	_, err := client.InvokeSync(ctx, "car-service", "v2.0.0", 120, 2.8)
	require.ErrorIs(t, err, core.ErrServiceNotFound)
	assert.Zero(t, backend.InvokeCalls, "failed resolution must not invoke")
}
