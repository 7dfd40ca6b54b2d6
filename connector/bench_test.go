package connector_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/floorpath/connector"
	"github.com/katalvlaran/floorpath/layout"
)

// benchTower builds n floors, each with k elevators serving every floor.
func benchTower(b *testing.B, n, k int) *connector.Graph {
	b.Helper()
	floors := make([][]string, n)
	for z := range floors {
		floors[z] = []string{strings.Repeat("E", k)}
	}
	var links []layout.Link
	for x := 0; x < k; x++ {
		for z := 0; z < n; z++ {
			for w := z + 1; w < n; w++ {
				links = append(links, layout.Link{A: layout.At(x, 0, z), B: layout.At(x, 0, w)})
			}
		}
	}
	bld, err := layout.ParseBuilding(floors, links...)
	if err != nil {
		b.Fatal(err)
	}

	return connector.NewGraph(bld)
}

func BenchmarkEnumerate_Elevators(b *testing.B) {
	g := benchTower(b, 6, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := connector.Enumerate(g, 0, 5); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkEnumerate_Transfers(b *testing.B) {
	g := benchTower(b, 4, 3)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := connector.Enumerate(g, 0, 3, connector.WithTransfers(), connector.WithMaxSequences(1000)); err != nil {
			b.Fatal(err)
		}
	}
}
