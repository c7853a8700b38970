package coffee

import (
	"bytes"
	"testing"

	"github.com/go-leo/gox/errorx"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabelOf(t *testing.T) {
	assert.Equal(t, Label{Name: EspressoType, MilkPercentage: 0, CoffeePercentage: 100}, LabelOf(NewEspresso()))
	assert.Equal(t, Label{Name: CappuccinoType, MilkPercentage: 50, CoffeePercentage: 50}, LabelOf(NewCappuccino()))
}

func TestEncodeLabel(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, EncodeLabel(&buf, NewEspresso()))
	assert.True(t, bytes.HasSuffix(buf.Bytes(), []byte("\n")))
	jsonassert.New(t).Assertf(buf.String(), `{"name":"Espresso","milk_percentage":0,"coffee_percentage":100}`)

	buf.Reset()
	require.NoError(t, EncodeLabel(&buf, CappuccinoMaker{}.Brew()))
	jsonassert.New(t).Assertf(buf.String(), `{"name":"Cappuccino","milk_percentage":50,"coffee_percentage":50}`)
}

func TestEncodeLabelMatchesMarshal(t *testing.T) {
	for _, m := range []Maker{EspressoMaker{}, CappuccinoMaker{}} {
		c := m.Brew()
		var buf bytes.Buffer
		require.NoError(t, EncodeLabel(&buf, c))
		assert.JSONEq(t, string(errorx.Ignore(json.Marshal(LabelOf(c)))), buf.String())
	}
}
