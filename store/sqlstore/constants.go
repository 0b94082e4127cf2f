package sqlstore

// defaultTable is the name of the table used if Config.Table is empty.
const defaultTable = "positions"

// createTable is the sql statement to create the positions table. Positions are
// stored reduced, thus the primary key identifies equal positions.
const createTable = `
CREATE TABLE IF NOT EXISTS %s (
	numerator INTEGER NOT NULL,
	denominator INTEGER NOT NULL,
	payload BLOB,
	PRIMARY KEY(numerator, denominator)
)
`

// upsertRow is the sql statement to insert or replace a single row.
const upsertRow = `
INSERT OR REPLACE INTO %s (
	numerator,
	denominator,
	payload
) VALUES (:numerator, :denominator, :payload)
`

const deleteRow = `DELETE FROM %s WHERE numerator = ? AND denominator = ?`

const deleteAll = `DELETE FROM %s`

// selectAll does not order rows: SQL would compare num/denom with float
// division. Load sorts the rows by exact position comparison instead.
const selectAll = `SELECT numerator, denominator, payload FROM %s`

const countRows = `SELECT COUNT(*) FROM %s`
