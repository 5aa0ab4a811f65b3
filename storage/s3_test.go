package storage

import (
	"fmt"
	"testing"

	"github.com/aws/aws-sdk-go-v2/service/s3/types"
	"github.com/stretchr/testify/require"
)

func TestIsNotFound(t *testing.T) {
	require.True(t, IsNotFound(&types.NoSuchKey{}))
	require.True(t, IsNotFound(fmt.Errorf("get VERSION: %w", &types.NotFound{})))
	require.False(t, IsNotFound(fmt.Errorf("boom")))
}
