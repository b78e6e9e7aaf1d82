package loader_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metro/builder"
	"github.com/katalvlaran/metro/core"
	"github.com/katalvlaran/metro/loader"
)

func TestWriteThenRead(t *testing.T) {
	ld, _ := setup()
	src, err := builder.BuildNetwork([]core.Option{core.WithLogger(quiet())},
		[]builder.BuilderOption{builder.WithSeed(5), builder.WithDistanceFn(builder.UniformWeightFn(0.5, 3))},
		builder.Grid(3, 3),
		builder.RandomLinks(0.2),
	)
	require.NoError(t, err)
	src.AddStation("Loop, The", "Odd", 9, 1.5, -2.25)
	src.AddEdge("Loop, The", "Loop, The", 1)

	var stations, connections bytes.Buffer
	require.NoError(t, loader.WriteStations(&stations, src))
	require.NoError(t, loader.WriteConnections(&connections, src))

	_, dst := setup()
	st, err := ld.Stations(&stations, dst)
	require.NoError(t, err)
	assert.Equal(t, src.StationCount(), st.Added)
	st, err = ld.Connections(&connections, dst)
	require.NoError(t, err)
	assert.Equal(t, src.EdgeCount(), st.Added)

	assert.Equal(t, src.Stations(), dst.Stations())
	for _, name := range src.Stations() {
		a, _ := src.Station(name)
		b, _ := dst.Station(name)
		assert.Equal(t, a, b)
		na, _ := src.Neighbors(name)
		nb, _ := dst.Neighbors(name)
		assert.ElementsMatch(t, na, nb, name)
	}
}
