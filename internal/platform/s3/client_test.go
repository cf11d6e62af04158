package s3

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/aws/smithy-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	client, err := NewClient("http://localhost:9000", "us-east-1", "access", "secret")
	require.NoError(t, err)
	assert.NotNil(t, client.s3)
	assert.Equal(t, "us-east-1", client.region)
}

func TestIsBucketAlreadyOwned(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil",
			err:  nil,
			want: false,
		},
		{
			name: "typed owned-by-you",
			err:  &types.BucketAlreadyOwnedByYou{},
			want: true,
		},
		{
			name: "typed already-exists",
			err:  &types.BucketAlreadyExists{},
			want: true,
		},
		{
			name: "wrapped typed error",
			err:  fmt.Errorf("create: %w", &types.BucketAlreadyOwnedByYou{}),
			want: true,
		},
		{
			name: "generic api error with owned code",
			err:  &smithy.GenericAPIError{Code: "BucketAlreadyOwnedByYou", Message: "exists"},
			want: true,
		},
		{
			name: "generic api error with exists code",
			err:  &smithy.GenericAPIError{Code: "BucketAlreadyExists", Message: "exists"},
			want: true,
		},
		{
			name: "unrelated api error",
			err:  &smithy.GenericAPIError{Code: "AccessDenied", Message: "no"},
			want: false,
		},
		{
			name: "plain error",
			err:  errors.New("connection refused"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, isBucketAlreadyOwned(tt.err))
		})
	}
}
