// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package storage provides the storage abstraction layer for litstore.
//
// This package defines the repository interface that decouples the storage
// implementation from the ingestion pipeline. The production backend lives
// in storage/postgres (PostgreSQL with the pgvector extension); tests use
// lightweight in-memory fakes implementing the same interface.
//
// # Constructor Return Type Pattern
//
// Public constructors return interface types to enforce abstraction:
//
//	repo, err := postgres.Open(dsn)  // returns storage.AbstractRepository
//
// # Durability and Atomicity
//
// AddAbstracts commits all given entities in a single transaction; a batch
// either lands completely or not at all. The store owns durability after a
// successful return. A unique index on the external identifier (PMID)
// rejects duplicate insertion across repeated runs; violations surface as
// ErrDuplicate.
package storage
