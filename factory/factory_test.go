package factory

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFunc(t *testing.T) {
	var f Factory[string, int] = Func[string, int](func(ctx context.Context, param int) (string, error) {
		if param < 0 {
			return "", errors.New("negative")
		}
		return strconv.Itoa(param), nil
	})

	s, err := f.Create(context.Background(), 42)
	assert.NoError(t, err)
	assert.Equal(t, "42", s)

	_, err = f.Create(context.Background(), -1)
	assert.EqualError(t, err, "negative")
}

func TestMust(t *testing.T) {
	assert.Equal(t, 1, Must(1, nil))
	assert.PanicsWithError(t, "boom", func() {
		Must(0, errors.New("boom"))
	})
}
