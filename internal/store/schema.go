package store

const schemaSQL = `
CREATE TABLE IF NOT EXISTS incomes (
    id             TEXT PRIMARY KEY,
    description    TEXT NOT NULL,
    amount         TEXT NOT NULL,
    frequency      TEXT NOT NULL DEFAULT 'monthly',
    income_date    INTEGER NOT NULL CHECK (income_date BETWEEN 1 AND 31),
    created_at     TEXT NOT NULL,
    updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS deductions (
    id             TEXT PRIMARY KEY,
    description    TEXT NOT NULL,
    amount         TEXT NOT NULL,
    category       TEXT NOT NULL DEFAULT 'other',
    deduction_date INTEGER NOT NULL CHECK (deduction_date BETWEEN 1 AND 31),
    created_at     TEXT NOT NULL,
    updated_at     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS projection_days (
    day            INTEGER PRIMARY KEY CHECK (day BETWEEN 1 AND 31)
);

CREATE INDEX IF NOT EXISTS idx_incomes_date ON incomes(income_date);
CREATE INDEX IF NOT EXISTS idx_deductions_date ON deductions(deduction_date);
`
