package app

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"districtmap/adapters/excel"
	"districtmap/adapters/jsonfile"
	"districtmap/domain/district"
	"districtmap/internal/errors"
	"districtmap/internal/testkit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

type MockSink struct {
	mock.Mock
}

func (m *MockSink) Write(ctx context.Context, path string, v interface{}) error {
	args := m.Called(ctx, path, v)
	return args.Error(0)
}

type staticSource struct {
	rows []district.Row
	err  error
}

func (s staticSource) ReadRows(ctx context.Context) ([]district.Row, error) {
	return s.rows, s.err
}

func convertWorkbook(t *testing.T, rows [][]string) (string, *Summary, string) {
	t.Helper()
	input := testkit.WriteWorkbook(t, "districts.xlsx", "Sheet1", rows)
	output := filepath.Join(t.TempDir(), "district_data.json")

	var progress bytes.Buffer
	converter := NewConverter(jsonfile.NewWriter("  "), &progress)
	summary, err := converter.Convert(context.Background(), ConvertRequest{
		Source:     excel.NewDataReader(excel.ReaderConfig{FilePath: input}),
		SourceName: input,
		OutputPath: output,
	})
	require.NoError(t, err)
	return output, summary, progress.String()
}

func TestConvert_TwoRowWorkbook(t *testing.T) {
	output, summary, progress := convertWorkbook(t, testkit.TwoRowSample())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var ds district.Dataset
	require.NoError(t, json.Unmarshal(data, &ds))

	require.Len(t, ds.HouseCounties, 3)
	assert.ElementsMatch(t, []string{"Lake"}, ds.HouseCounties["1"])
	assert.ElementsMatch(t, []string{"Lake"}, ds.HouseCounties["2"])
	assert.ElementsMatch(t, []string{"Lake", "Porter"}, ds.HouseCounties["3"])
	assert.Subset(t, ds.CountyHouse["Lake"], []int{1, 2, 3})
	assert.Equal(t, map[string][]string{"5": {"Porter"}}, ds.SenateCounties)
	assert.Empty(t, ds.CongressionalCounties)
	assert.Equal(t, []string{"Lake", "Porter"}, ds.AllCounties)

	for _, key := range []string{"hd_to_counties", "sd_to_counties", "cd_to_counties", "county_to_hds", "county_to_sds", "county_to_cds", "all_counties"} {
		assert.True(t, gjson.GetBytes(data, key).Exists(), key)
	}
	assert.True(t, gjson.GetBytes(data, "cd_to_counties").IsObject())

	assert.Equal(t, 3, summary.Categories[0].Districts)
	assert.Equal(t, 2, summary.TotalCounties)
	assert.Contains(t, progress, "Reading ")
	assert.Contains(t, progress, "Processing districts...")
	assert.Contains(t, progress, "Building reverse mappings...")
	assert.Contains(t, progress, "House Districts: 3")
	assert.Contains(t, progress, "Senate Districts: 1")
	assert.Contains(t, progress, "Congressional Districts: 0")
	assert.Contains(t, progress, "JSON file saved as: "+output)
}

func TestConvert_SampleWorkbook(t *testing.T) {
	output, _, _ := convertWorkbook(t, testkit.SampleRows())

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var ds district.Dataset
	require.NoError(t, json.Unmarshal(data, &ds))

	assert.Equal(t, []string{"Elkhart", "LaPorte", "Lake", "Marshall", "Porter", "St. Joseph"}, ds.AllCounties)
	assert.Equal(t, []string{"LaPorte", "Lake", "Porter"}, ds.CongressionalCounties["1"])
	assert.Equal(t, []string{"Elkhart", "Marshall", "St. Joseph"}, ds.CongressionalCounties["2"])
	assert.Equal(t, []int{4, 5, 6}, ds.CountySenate["LaPorte"])
	assert.Equal(t, []int{1}, ds.CountySenate["Lake"])
	assert.Equal(t, []int{5}, ds.CountyHouse["St. Joseph"])

	for _, c := range district.Categories() {
		forward := district.ForwardMap{}
		for key, counties := range ds.Forward(c) {
			d, err := strconv.Atoi(key)
			require.NoError(t, err)
			forward[d] = counties
		}
		assert.NoError(t, district.CheckConsistency(forward, ds.Reverse(c)))
	}
}

func TestConvert_MissingInputWritesNothing(t *testing.T) {
	output := filepath.Join(t.TempDir(), "district_data.json")
	require.NoError(t, os.WriteFile(output, []byte("previous"), 0o644))

	sink := new(MockSink)
	converter := NewConverter(sink, nil)
	_, err := converter.Convert(context.Background(), ConvertRequest{
		Source:     excel.NewDataReader(excel.ReaderConfig{FilePath: filepath.Join(t.TempDir(), "missing.xlsx")}),
		SourceName: "missing.xlsx",
		OutputPath: output,
	})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInputNotFound))
	sink.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	assert.Equal(t, "previous", string(data))
}

func TestConvert_SinkFailure(t *testing.T) {
	sink := new(MockSink)
	sink.On("Write", mock.Anything, "out.json", mock.AnythingOfType("*district.Dataset")).
		Return(errors.WriteFailed("disk full", nil))

	converter := NewConverter(sink, nil)
	_, err := converter.Convert(context.Background(), ConvertRequest{
		Source:     staticSource{rows: []district.Row{{"1", "Lake"}}},
		SourceName: "memory",
		OutputPath: "out.json",
	})

	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeWriteFailed))
	sink.AssertExpectations(t)
}

func TestConvert_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sink := new(MockSink)
	converter := NewConverter(sink, nil)
	_, err := converter.Convert(ctx, ConvertRequest{
		Source:     staticSource{rows: []district.Row{{"1", "Lake"}}},
		SourceName: "memory",
		OutputPath: "out.json",
	})

	require.Error(t, err)
	sink.AssertNotCalled(t, "Write", mock.Anything, mock.Anything, mock.Anything)
}

func TestSummarize(t *testing.T) {
	ds, err := district.Build(district.Aggregate([]district.Row{
		{"1", "Lake"},
		{"2", "Lake, Porter, Jasper"},
		{"3", "Newton, Benton"},
	}))
	require.NoError(t, err)

	summary := Summarize(ds, "out.json")

	house := summary.Categories[0]
	assert.Equal(t, district.House, house.Category)
	assert.Equal(t, 3, house.Districts)
	assert.InDelta(t, 2.0, house.MeanCounties, 1e-9)
	assert.InDelta(t, 2.0, house.MedianCounties, 1e-9)
	assert.InDelta(t, 3.0, house.MaxCounties, 1e-9)
	assert.Zero(t, summary.Categories[1].MeanCounties)
	assert.Equal(t, 5, summary.TotalCounties)

	var buf bytes.Buffer
	summary.Print(&buf)
	assert.Contains(t, buf.String(), "Counties per house district: mean 2.00, median 2.0, max 3")
	assert.NotContains(t, buf.String(), "Counties per senate district")
}
