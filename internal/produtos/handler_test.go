package produtos

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/KromaEnergia/loja-cli/internal/models"
	"github.com/KromaEnergia/loja-cli/internal/utils"
	"github.com/KromaEnergia/loja-cli/internal/utils/db/dbtest"
	"github.com/KromaEnergia/loja-cli/internal/utils/prompt"
)

func newHandler(t *testing.T, database *gorm.DB, input string) (*Handler, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	return NewHandler(NewRepository(database), prompt.New(strings.NewReader(input), &out)), &out
}

func TestListPrintsSeed(t *testing.T) {
	database := dbtest.Open(t)
	h, out := newHandler(t, database, "")

	require.NoError(t, h.List(context.Background()))
	assert.Equal(t, "1 | hat | 10 | clothes\n2 | bmw | 1000 | cars\n3 | audi | 1100 | cars\n4 | fiat | 800 | cars\n", out.String())
}

func TestCreateThenRead(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()

	h, out := newHandler(t, database, "kia\n750.5\ncars\n")
	require.NoError(t, h.Create(ctx))
	assert.Contains(t, out.String(), "Product #5 has been created!")

	p, err := h.Repo.FindByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "kia", p.Good)
	assert.Equal(t, 750.5, p.Price)
	assert.Equal(t, "cars", p.Category)

	h, out = newHandler(t, database, "")
	require.NoError(t, h.Read(ctx, 5))
	assert.Equal(t, "5 | kia | 750.5 | cars\n", out.String())
}

func TestCreateDefaults(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()

	h, _ := newHandler(t, database, "\n\n\n")
	require.NoError(t, h.Create(ctx))

	p, err := h.Repo.FindByID(ctx, 5)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, models.Product{ID: 5, Good: DefaultGood, Price: 100.0, Category: DefaultCategory}, *p)
}

func TestCreateInvalidPrice(t *testing.T) {
	database := dbtest.Open(t)

	h, _ := newHandler(t, database, "kia\ncheap\ncars\n")
	err := h.Create(context.Background())
	assert.True(t, errors.Is(err, utils.ErrInvalidNumber))
	assert.EqualValues(t, 4, dbtest.Count(t, database, &models.Product{}))
}

func TestReadNotFound(t *testing.T) {
	database := dbtest.Open(t)
	h, out := newHandler(t, database, "")

	require.NoError(t, h.Read(context.Background(), 42))
	assert.Equal(t, "Product #42 not found\n", out.String())
}

func TestUpdateEmptyKeepsFields(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()

	h, out := newHandler(t, database, "\n\n\n")
	require.NoError(t, h.Update(ctx, 2))
	assert.Contains(t, out.String(), "Current product: 2 | bmw | 1000 | cars")

	p, err := h.Repo.FindByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: 2, Good: "bmw", Price: 1000.0, Category: "cars"}, *p)
}

func TestUpdateSomeFields(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()

	h, _ := newHandler(t, database, "\n1250\nluxury\n")
	require.NoError(t, h.Update(ctx, 3))

	p, err := h.Repo.FindByID(ctx, 3)
	require.NoError(t, err)
	assert.Equal(t, models.Product{ID: 3, Good: "audi", Price: 1250.0, Category: "luxury"}, *p)
}

func TestUpdateWhitespaceIsNewValue(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()

	h, _ := newHandler(t, database, "  \n\n\n")
	require.NoError(t, h.Update(ctx, 1))
	p, err := h.Repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "  ", p.Good)

	// preço só com espaços não é número
	h, _ = newHandler(t, database, "\n  \n\n")
	err = h.Update(ctx, 2)
	assert.True(t, errors.Is(err, utils.ErrInvalidNumber))
}

func TestUpdateNotFound(t *testing.T) {
	database := dbtest.Open(t)
	h, out := newHandler(t, database, "")

	require.NoError(t, h.Update(context.Background(), 9))
	assert.Equal(t, "Product #9 not found\n", out.String())
}

func TestDelete(t *testing.T) {
	database := dbtest.Open(t)
	ctx := context.Background()

	h, out := newHandler(t, database, "")
	require.NoError(t, h.Delete(ctx, 1))
	assert.Equal(t, "Product #1 has been removed!\n", out.String())

	p, err := h.Repo.FindByID(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestDeleteMissing(t *testing.T) {
	database := dbtest.Open(t)
	h, out := newHandler(t, database, "")

	require.NoError(t, h.Delete(context.Background(), 77))
	assert.Equal(t, "Product #77 is not exist!\n", out.String())
	assert.EqualValues(t, 4, dbtest.Count(t, database, &models.Product{}))
}
