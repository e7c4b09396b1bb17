package columntype

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInt64ParseNative(t *testing.T) {
	tpe := &Int64Type{}
	v, err := tpe.Parse(int64(7))
	require.Nil(t, err)
	require.Equal(t, int64(7), v)
	v, err = tpe.Parse(7)
	require.Nil(t, err)
	require.Equal(t, int64(7), v)
	v, err = tpe.Parse(uint8(7))
	require.Nil(t, err)
	require.Equal(t, int64(7), v)
}

func TestInt64ParseCoercion(t *testing.T) {
	tpe := &Int64Type{}
	// numeric strings coerce
	v, err := tpe.Parse("7")
	require.Nil(t, err)
	require.Equal(t, int64(7), v)
	v, err = tpe.Parse(" 42 ")
	require.Nil(t, err)
	require.Equal(t, int64(42), v)
	// floats truncate
	v, err = tpe.Parse(7.9)
	require.Nil(t, err)
	require.Equal(t, int64(7), v)
	// non-numeric strings fail
	_, err = tpe.Parse("abc")
	require.NotNil(t, err)
	_, err = tpe.Parse("7.5")
	require.NotNil(t, err)
}

func TestInt32ParseOverflow(t *testing.T) {
	tpe := &Int32Type{}
	v, err := tpe.Parse(int64(12))
	require.Nil(t, err)
	require.Equal(t, int32(12), v)
	_, err = tpe.Parse(int64(1) << 40)
	require.NotNil(t, err)
}

func TestFloat64Parse(t *testing.T) {
	tpe := &Float64Type{}
	v, err := tpe.Parse(9.5)
	require.Nil(t, err)
	require.Equal(t, 9.5, v)
	v, err = tpe.Parse(8)
	require.Nil(t, err)
	require.Equal(t, 8.0, v)
	v, err = tpe.Parse("9.5")
	require.Nil(t, err)
	require.Equal(t, 9.5, v)
	_, err = tpe.Parse("not a number")
	require.NotNil(t, err)
}

func TestFloat32Parse(t *testing.T) {
	tpe := &Float32Type{}
	v, err := tpe.Parse("2.5")
	require.Nil(t, err)
	require.Equal(t, float32(2.5), v)
}

func TestStringParse(t *testing.T) {
	tpe := &StringType{}
	v, err := tpe.Parse("x")
	require.Nil(t, err)
	require.Equal(t, "x", v)
	v, err = tpe.Parse([]byte("bytes"))
	require.Nil(t, err)
	require.Equal(t, "bytes", v)
	v, err = tpe.Parse(7)
	require.Nil(t, err)
	require.Equal(t, "7", v)
	v, err = tpe.Parse(9.5)
	require.Nil(t, err)
	require.Equal(t, "9.5", v)
	v, err = tpe.Parse(true)
	require.Nil(t, err)
	require.Equal(t, "true", v)
}

func TestBoolParse(t *testing.T) {
	tpe := &BoolType{}
	v, err := tpe.Parse(true)
	require.Nil(t, err)
	require.Equal(t, true, v)
	v, err = tpe.Parse("true")
	require.Nil(t, err)
	require.Equal(t, true, v)
	v, err = tpe.Parse(0)
	require.Nil(t, err)
	require.Equal(t, false, v)
	v, err = tpe.Parse(1)
	require.Nil(t, err)
	require.Equal(t, true, v)
	_, err = tpe.Parse("maybe")
	require.NotNil(t, err)
}

func TestDatetimeParse(t *testing.T) {
	tpe := &DatetimeType{}
	now := time.Now()
	v, err := tpe.Parse(now)
	require.Nil(t, err)
	require.Equal(t, now, v)
	v, err = tpe.Parse("2016-04-08T09:10:12Z")
	require.Nil(t, err)
	require.Equal(t, time.Date(2016, 4, 8, 9, 10, 12, 0, time.UTC), v)
	// numbers are unix timestamps in seconds
	v, err = tpe.Parse(int64(1460106612))
	require.Nil(t, err)
	require.Equal(t, time.Date(2016, 4, 8, 9, 10, 12, 0, time.UTC), v.(time.Time))
	_, err = tpe.Parse("04/08/2016")
	require.NotNil(t, err)
}

func TestDatetimeParseCustomFormat(t *testing.T) {
	tpe := &DatetimeType{Format: "2006-01-02"}
	v, err := tpe.Parse("2016-04-08")
	require.Nil(t, err)
	require.Equal(t, time.Date(2016, 4, 8, 0, 0, 0, 0, time.UTC), v)
}

func TestFromName(t *testing.T) {
	for _, name := range []string{"bool", "int32", "int64", "float32", "float64", "string", "datetime"} {
		tpe, err := FromName(name)
		require.Nil(t, err)
		require.Equal(t, name, tpe.Name())
	}
	_, err := FromName("uint128")
	require.NotNil(t, err)
}
