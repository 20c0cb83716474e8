package sql

import "embed"

// Migrations holds the schema migration files, applied in filename order.
//
//go:embed migrations
var Migrations embed.FS

//go:embed queries/count_batch_rows.sql
var CountBatchRows string

//go:embed queries/delete_batch.sql
var DeleteBatch string
