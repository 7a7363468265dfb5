package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trendyreports/trendyreports/consts"
	"github.com/trendyreports/trendyreports/pkg/errors"
)

func TestBuild_DispatchesEveryReportType(t *testing.T) {
	r := NewWithClock(fixedClock)
	for _, rt := range consts.ReportTypes {
		out, err := r.Build(rt, "<html>{{market_name}}</html>", snapshotPayload())
		require.NoError(t, err, rt)
		assert.Contains(t, out, "Crestwood Falls", rt)
	}
}

func TestBuild_UnknownReportType(t *testing.T) {
	_, err := NewWithClock(fixedClock).Build("weekly_digest", "<html></html>", snapshotPayload())
	require.Error(t, err)
	appErr, ok := errors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeRenderReportType, appErr.Code)
	assert.Contains(t, appErr.Message, "weekly_digest")
}

func TestUnwrapResult_WrappedShape(t *testing.T) {
	inner := &ReportResult{City: "Crestwood Falls"}
	res := UnwrapResult(&Payload{ResultJSON: inner})
	assert.Same(t, inner, res)
}

func TestUnwrapResult_BareShape(t *testing.T) {
	res := UnwrapResult(&Payload{ReportResult: ReportResult{City: "Lakeside"}})
	assert.Equal(t, "Lakeside", res.City)
}

func TestUnwrapResult_Nil(t *testing.T) {
	res := UnwrapResult(nil)
	require.NotNil(t, res)
	assert.Equal(t, "", res.City)
}

func TestPayload_JSONWrappedShape(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`{
		"result_json": {"city": "Crestwood Falls", "lookback_days": 30,
			"counts": {"Active": 150, "Pending": 25, "Closed": 75}},
		"brand": {"display_name": "ACME Title"}
	}`), &p)
	require.NoError(t, err)

	res := UnwrapResult(&p)
	assert.Equal(t, "Crestwood Falls", res.City)
	assert.Equal(t, float64(75), res.Counts.Closed)
	require.NotNil(t, p.Brand)
	assert.Equal(t, "ACME Title", p.Brand.DisplayName)
}

func TestPayload_JSONBareShape(t *testing.T) {
	var p Payload
	err := json.Unmarshal([]byte(`{"city": "Lakeside", "lookback_days": 14}`), &p)
	require.NoError(t, err)

	res := UnwrapResult(&p)
	assert.Equal(t, "Lakeside", res.City)
	assert.Equal(t, 14, res.LookbackDays)
}

func TestPeriodLabel_Default(t *testing.T) {
	assert.Equal(t, "Last 14 days", periodLabel(&ReportResult{LookbackDays: 14}))
	assert.Equal(t, "June 2025", periodLabel(&ReportResult{PeriodLabel: "June 2025"}))
}

func TestSampleReportData_CoversEveryType(t *testing.T) {
	for _, rt := range consts.ReportTypes {
		res := SampleReportData(rt)
		require.NotNil(t, res, rt)
		assert.Equal(t, "Crestwood Falls", res.City, rt)
		out, err := NewWithClock(fixedClock).Build(rt, "<html>{{market_name}} {{report_date}}</html>", &Payload{ResultJSON: res})
		require.NoError(t, err, rt)
		assert.Contains(t, out, "June 30, 2025", rt)
	}
}
