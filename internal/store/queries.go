package store

// SQL statements for PostgresStore, one named-args constant per operation.

const queryListSuppliers = `
SELECT id, manufacturer, emails, created_at, updated_at
FROM suppliers
ORDER BY created_at, id`

const queryGetSupplier = `
SELECT id, manufacturer, emails, created_at, updated_at
FROM suppliers
WHERE id = $1`

const queryGetSupplierByManufacturer = `
SELECT id, manufacturer, emails, created_at, updated_at
FROM suppliers
WHERE LOWER(manufacturer) = LOWER(@manufacturer)`

const queryInsertSupplier = `
INSERT INTO suppliers (manufacturer, emails)
VALUES (@manufacturer, @emails)
RETURNING id, created_at, updated_at`

const queryUpdateSupplierEmails = `
UPDATE suppliers
SET emails = @emails, updated_at = now()
WHERE id = @id
RETURNING updated_at`

const queryDeleteSupplier = `
DELETE FROM suppliers
WHERE id = $1`

const queryCountSuppliers = `
SELECT COUNT(*) FROM suppliers`
