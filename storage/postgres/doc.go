// Package postgres implements storage.AbstractRepository on PostgreSQL
// with the pgvector extension.
//
// Requirements:
//   - PostgreSQL with the pgvector extension available
//   - CREATE EXTENSION privilege for the connecting role (or the extension
//     pre-installed by an administrator)
//
// Init runs CREATE EXTENSION IF NOT EXISTS vector followed by a schema
// migration, both idempotent. The embedding column is declared with a fixed
// dimension (VectorDimensions); inserts are validated against it before
// reaching the database.
package postgres
