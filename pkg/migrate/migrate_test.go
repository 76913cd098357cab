package migrate

import (
	"context"
	"syscall"
	"testing"

	"github.com/arthur-debert/milton/pkg/errors"
	"github.com/arthur-debert/milton/pkg/mapping"
	"github.com/arthur-debert/milton/pkg/testutil"
	"github.com/arthur-debert/milton/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	origA = "20200619_161734"
	origB = "20200619_190710"
	replA = "48213377_020934"
	replB = "90417723_554310"
)

func testMapping() *mapping.Mapping {
	return mapping.FromPairs(
		mapping.Pair{Original: origA, Replacement: replA},
		mapping.Pair{Original: origB, Replacement: replB},
	)
}

func TestDestinationName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"embedded id", origA + "_songmanual.zarr", replA + "_songmanual.zarr"},
		{"no id", "notes.txt", "notes.txt"},
		{"id twice", origA + "-" + origA + ".h5", replA + "-" + replA + ".h5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DestinationName(tt.in, origA, replA))
		})
	}
}

func TestDestinationName_EmptyOriginal(t *testing.T) {
	assert.Equal(t, origA+"_songmanual.zarr", DestinationName(origA+"_songmanual.zarr", "", replA))
}

func TestMigrate_CopiesAndRenames(t *testing.T) {
	fs := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").
		Data(origA, origA+".wav", origA+"_annotations.csv").
		Data(origB, origB+".wav")
	vol.Build(t, fs)
	sink := display.NewRecordingSink()

	report, err := New(fs, sink).Migrate(context.Background(), Options{
		SourceRoot: vol.DataDir(),
		TargetRoot: "/blind/q/dat",
		Mapping:    testMapping(),
		HostPrefix: "localhost-",
		KeepSource: true,
		Mode:       ModeObfuscate,
	})
	require.NoError(t, err)

	testutil.AssertFileContent(t, fs, "/blind/q/dat/localhost-"+replA+"/"+replA+".wav", "dat/localhost-"+origA+"/"+origA+".wav")
	testutil.AssertFileContent(t, fs, "/blind/q/dat/localhost-"+replA+"/"+replA+"_annotations.csv", "dat/localhost-"+origA+"/"+origA+"_annotations.csv")
	testutil.AssertFileContent(t, fs, "/blind/q/dat/localhost-"+replB+"/"+replB+".wav", "dat/localhost-"+origB+"/"+origB+".wav")

	// sources untouched
	testutil.AssertFileContent(t, fs, "/lab/dat/localhost-"+origA+"/"+origA+".wav", "dat/localhost-"+origA+"/"+origA+".wav")

	assert.Equal(t, 3, report.Count(ActionCopied))
	assert.Equal(t, 3, report.Transferred())
	assert.Empty(t, report.NoMatch)
	assert.Equal(t, []string{"localhost-" + origA, "localhost-" + origB}, sink.Steps)
	assert.Equal(t, 0, sink.Count(display.KindRestoring))
}

func TestMigrate_Moves(t *testing.T) {
	fs := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").Data(origA, origA+".wav")
	vol.Build(t, fs)

	report, err := New(fs, nil).Migrate(context.Background(), Options{
		SourceRoot: vol.DataDir(),
		TargetRoot: "/out",
		Mapping:    mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}),
		HostPrefix: "localhost-",
		KeepSource: false,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(ActionMoved))
	testutil.AssertNotExists(t, fs, "/lab/dat/localhost-"+origA+"/"+origA+".wav")
	testutil.AssertFileContent(t, fs, "/out/localhost-"+replA+"/"+replA+".wav", "dat/localhost-"+origA+"/"+origA+".wav")
}

func TestMigrate_PatternFilters(t *testing.T) {
	fs := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").
		Results(origA, origA+"_songmanual.zarr", origA+"_tuna.h5")
	vol.Build(t, fs)

	report, err := New(fs, nil).Migrate(context.Background(), Options{
		SourceRoot: vol.ResultsDir(),
		TargetRoot: "/out",
		Mapping:    mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}),
		HostPrefix: "localhost-",
		KeepSource: true,
		Pattern:    "*songmanual.zarr",
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Transferred())
	assert.Equal(t, []string{replA + "_songmanual.zarr"}, testutil.ListDir(t, fs, "/out/localhost-"+replA))
}

func TestMigrate_NoMatchIsNotAnError(t *testing.T) {
	fs := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").Results(origA, "unrelated.txt").Results(origB)
	vol.Build(t, fs)
	sink := display.NewRecordingSink()

	report, err := New(fs, sink).Migrate(context.Background(), Options{
		SourceRoot: vol.ResultsDir(),
		TargetRoot: "/out",
		Mapping:    testMapping(),
		HostPrefix: "localhost-",
		KeepSource: true,
		Pattern:    "*songmanual.zarr",
	})
	require.NoError(t, err)

	assert.Len(t, report.NoMatch, 2)
	assert.Equal(t, 2, sink.Count(display.KindNoMatch))
	assert.Contains(t, sink.Messages(display.KindNoMatch)[0], "/lab/res/localhost-"+origA+"/*songmanual.zarr")

	// only the per-pair destination directories exist
	assert.Equal(t, []string{"localhost-" + replA, "localhost-" + replB}, testutil.ListDir(t, fs, "/out"))
	assert.Empty(t, testutil.ListDir(t, fs, "/out/localhost-"+replA))
}

func TestMigrate_MissingSourceDirectory(t *testing.T) {
	fs := testutil.NewTestFS()

	report, err := New(fs, nil).Migrate(context.Background(), Options{
		SourceRoot: "/lab/res",
		TargetRoot: "/out",
		Mapping:    mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}),
		HostPrefix: "localhost-",
		KeepSource: true,
	})
	require.NoError(t, err)
	assert.Len(t, report.NoMatch, 1)
}

func TestMigrate_SkipsExistingWithoutOverwrite(t *testing.T) {
	fs := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").Results(origA, origA+"_songmanual.zarr")
	vol.Build(t, fs)
	testutil.WriteFile(t, fs, "/out/localhost-"+replA+"/"+replA+"_songmanual.zarr", "existing")
	sink := display.NewRecordingSink()

	report, err := New(fs, sink).Migrate(context.Background(), Options{
		SourceRoot: vol.ResultsDir(),
		TargetRoot: "/out",
		Mapping:    mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}),
		HostPrefix: "localhost-",
		KeepSource: true,
		Mode:       ModeRestore,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(ActionSkipped))
	assert.Equal(t, 0, report.Transferred())
	testutil.AssertFileContent(t, fs, "/out/localhost-"+replA+"/"+replA+"_songmanual.zarr", "existing")
	require.Len(t, sink.Messages(display.KindSkipped), 1)
	assert.Contains(t, sink.Messages(display.KindSkipped)[0], "skipping existing")
}

func TestMigrate_OverwritesWhenRequested(t *testing.T) {
	fs := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").Results(origA, origA+"_songmanual.zarr")
	vol.Build(t, fs)
	dst := "/out/localhost-" + replA + "/" + replA + "_songmanual.zarr"
	testutil.WriteFile(t, fs, dst, "existing")
	sink := display.NewRecordingSink()

	report, err := New(fs, sink).Migrate(context.Background(), Options{
		SourceRoot: vol.ResultsDir(),
		TargetRoot: "/out",
		Mapping:    mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}),
		HostPrefix: "localhost-",
		KeepSource: true,
		Overwrite:  true,
		Mode:       ModeRestore,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, report.Count(ActionOverwritten))
	testutil.AssertFileContent(t, fs, dst, "res/localhost-"+origA+"/"+origA+"_songmanual.zarr")
	assert.Equal(t, []string{"overwriting " + dst + "."}, sink.Messages(display.KindOverwriting))
}

func TestMigrate_RestoreModeReportsNewFiles(t *testing.T) {
	fs := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").Results(origA, origA+"_songmanual.zarr")
	vol.Build(t, fs)
	sink := display.NewRecordingSink()

	_, err := New(fs, sink).Migrate(context.Background(), Options{
		SourceRoot: vol.ResultsDir(),
		TargetRoot: "/out",
		Mapping:    mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}),
		HostPrefix: "localhost-",
		KeepSource: true,
		Mode:       ModeRestore,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, sink.Count(display.KindRestoring))
}

func TestMigrate_DirectoryStores(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, "/lab/res/localhost-"+origA+"/"+origA+"_songmanual.zarr/.zgroup", "{}")
	testutil.WriteFile(t, fs, "/lab/res/localhost-"+origA+"/"+origA+"_songmanual.zarr/onsets/0", "chunk")

	_, err := New(fs, nil).Migrate(context.Background(), Options{
		SourceRoot: "/lab/res",
		TargetRoot: "/out",
		Mapping:    mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}),
		HostPrefix: "localhost-",
		KeepSource: true,
		Pattern:    "*songmanual.zarr",
	})
	require.NoError(t, err)

	testutil.AssertFileContent(t, fs, "/out/localhost-"+replA+"/"+replA+"_songmanual.zarr/onsets/0", "chunk")
}

func TestMigrate_PartialFailureKeepsCompletedPairs(t *testing.T) {
	base := testutil.NewTestFS()
	vol := testutil.NewVolume("/lab").Data(origA, "a.wav").Data(origB, "b.wav")
	vol.Build(t, base)
	fs := testutil.NewFailingFS(base, syscall.ENOSPC, "localhost-"+replB+"/b.wav")

	report, err := New(fs, nil).Migrate(context.Background(), Options{
		SourceRoot: vol.DataDir(),
		TargetRoot: "/out",
		Mapping:    testMapping(),
		HostPrefix: "localhost-",
		KeepSource: true,
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileCopy))

	assert.Equal(t, 1, report.Transferred())
	testutil.AssertFileContent(t, base, "/out/localhost-"+replA+"/a.wav", "dat/localhost-"+origA+"/a.wav")
}

func TestMigrate_Cancelled(t *testing.T) {
	fs := testutil.NewTestFS()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := New(fs, nil).Migrate(ctx, Options{
		SourceRoot: "/lab/dat",
		TargetRoot: "/out",
		Mapping:    testMapping(),
		HostPrefix: "localhost-",
	})
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCancelled))
	testutil.AssertNotExists(t, fs, "/out")
}

func TestMigrate_RestoreIsIdempotentWithoutOverwrite(t *testing.T) {
	fs := testutil.NewTestFS()
	testutil.WriteFile(t, fs, "/q/res/localhost-"+replA+"/"+replA+"_songmanual.zarr", "labels")
	inverse, err := mapping.FromPairs(mapping.Pair{Original: origA, Replacement: replA}).Invert()
	require.NoError(t, err)

	opts := Options{
		SourceRoot: "/q/res",
		TargetRoot: "/lab/res",
		Mapping:    inverse,
		HostPrefix: "localhost-",
		KeepSource: true,
		Pattern:    "*songmanual.zarr",
		Mode:       ModeRestore,
	}

	first, err := New(fs, nil).Migrate(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 1, first.Transferred())
	before := testutil.Snapshot(t, fs, "/")

	second, err := New(fs, nil).Migrate(context.Background(), opts)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Transferred())
	assert.Equal(t, 1, second.Count(ActionSkipped))
	assert.Equal(t, before, testutil.Snapshot(t, fs, "/"))
	testutil.AssertFileContent(t, fs, "/lab/res/localhost-"+origA+"/"+origA+"_songmanual.zarr", "labels")
}
