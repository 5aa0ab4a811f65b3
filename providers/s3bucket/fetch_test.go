package s3bucket

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"vasp-registry/models"
	"vasp-registry/testutil"
)

func TestFetcher_List(t *testing.T) {
	store := testutil.NewMemoryS3()
	store.Put("potpaw/PBE/VERSION", []byte("r5_4_0\n"))
	store.Put("potpaw/PBE/Li_sv/POTCAR", []byte("li"))
	store.Put("potpaw/PBE/Fe/POTCAR", []byte("fe"))
	store.Put("potpaw/PBE/Fe/README", []byte("ignored"))
	store.Put("potpaw/LDA/Cu/POTCAR", []byte("cu"))
	store.Put("elsewhere/Ni/POTCAR", []byte("ni"))

	f := &Fetcher{Client: store, Bucket: "potcars", Prefix: "potpaw/", Logger: zap.NewNop()}
	require.Equal(t, "s3", f.Name())

	files, err := f.List(context.Background())
	require.NoError(t, err)
	require.Len(t, files, 3)

	require.Equal(t, "potpaw/LDA/Cu/POTCAR", files[0].Source)
	require.Equal(t, models.UnknownRelease, files[0].Release)
	require.Equal(t, "fe", files[1].Content)
	require.Equal(t, "r5_4_0", files[1].Release)
	require.Equal(t, "potpaw/PBE/Li_sv/POTCAR", files[2].Source)
	require.Equal(t, "r5_4_0", files[2].Release)
}

func TestFetcher_List_Concurrent(t *testing.T) {
	store := testutil.NewMemoryS3()
	store.Put("potpaw/PBE/VERSION", []byte("r5_4_0\n"))
	for i := 0; i < 50; i++ {
		store.Put(fmt.Sprintf("potpaw/PBE/El%02d/POTCAR", i), []byte("x"))
	}
	f := &Fetcher{Client: store, Bucket: "potcars", Prefix: "potpaw/", Logger: zap.NewNop()}

	// Cron und POST /sources/scan teilen sich dieselbe Fetcher-Instanz
	var wg sync.WaitGroup
	errs := make([]error, 4)
	counts := make([]int, 4)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			files, err := f.List(context.Background())
			errs[i], counts[i] = err, len(files)
		}(i)
	}
	wg.Wait()

	for i := range errs {
		require.NoError(t, errs[i])
		require.Equal(t, 50, counts[i])
	}
}
