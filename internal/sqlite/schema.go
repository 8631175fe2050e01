package sqlite

// Schema DDL for the recipe catalog. CREATE IF NOT EXISTS keeps schema
// application idempotent across process starts. The nested list columns
// hold JSON text produced and consumed only by the Recipes repository.
const schemaDDL = `CREATE TABLE IF NOT EXISTS recipes (
    recipe_id   INTEGER PRIMARY KEY AUTOINCREMENT,
    name        TEXT NOT NULL,
    description TEXT,
    ingredients TEXT,
    steps       TEXT
);`
