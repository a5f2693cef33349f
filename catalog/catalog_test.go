package catalog

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kasuganosora/memrel/index"
	"github.com/kasuganosora/memrel/schema"
)

func testSchema(t *testing.T) *schema.Schema {
	t.Helper()
	s, err := schema.New([]schema.Column{{Name: "id", Type: schema.TypeInt}})
	require.NoError(t, err)
	return s
}

func TestCreateTableRejectsDuplicateName(t *testing.T) {
	db := New(nil)
	s := testSchema(t)
	_, err := db.CreateTable("t", s)
	require.NoError(t, err)

	_, err = db.CreateTable("t", s)
	require.Error(t, err)
	var exists *schema.AlreadyExistsError
	require.ErrorAs(t, err, &exists)
}

func TestDropTableThenGetTableFails(t *testing.T) {
	db := New(nil)
	_, err := db.CreateTable("t", testSchema(t))
	require.NoError(t, err)

	require.NoError(t, db.DropTable("t"))

	_, err = db.GetTable("t")
	require.Error(t, err)
	var notFound *schema.NotFoundError
	require.ErrorAs(t, err, &notFound)
}

func TestDropTableMissingFails(t *testing.T) {
	db := New(nil)
	err := db.DropTable("ghost")
	require.Error(t, err)
}

func TestCreateIndexThenDropIndex(t *testing.T) {
	db := New(nil)
	_, err := db.CreateTable("t", testSchema(t))
	require.NoError(t, err)

	require.NoError(t, db.CreateIndex("t", "id", index.Eq))
	require.Error(t, db.CreateIndex("t", "id", index.Eq)) // already exists

	require.NoError(t, db.DropIndex("t", "id"))
	require.Error(t, db.DropIndex("t", "id")) // already gone
}
