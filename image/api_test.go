package image

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/picsart/creative-apis-go/api"
	"github.com/picsart/creative-apis-go/types"
)

func TestAPI_WithMethodsDeriveCopies(t *testing.T) {
	client := NewClient(&fakeTransport{}, DefaultClientConfig())
	base := NewAPI(client, types.NewConfig("k1", "https://api.test/tools/1.0", time.Minute))

	derived := base.
		WithAPIKey("k2").
		WithBaseURL("https://staging.test/tools/1.0").
		WithResponseTimeout(5 * time.Second)

	assert.Equal(t, "k1", base.Config().APIKey)
	assert.Equal(t, "https://api.test/tools/1.0", base.Config().BaseURL)
	assert.Equal(t, time.Minute, base.Config().Timeout)

	assert.Equal(t, "k2", derived.Config().APIKey)
	assert.Equal(t, "https://staging.test/tools/1.0", derived.Config().BaseURL)
	assert.Equal(t, 5*time.Second, derived.Config().Timeout)
}

func TestAPI_DerivedBaseURLUsedOnCalls(t *testing.T) {
	tr := &fakeTransport{getResponses: []*api.RawResponse{
		response(200, `{"credits":1}`, nil),
	}}
	client := NewClient(tr, DefaultClientConfig())
	base := NewAPI(client, types.NewConfig("k", "https://api.test/tools/1.0", time.Minute))

	_, err := base.WithBaseURL("https://eu.test/tools/1.0").Balance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"https://eu.test/tools/1.0/balance"}, tr.getURLs)
}
