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


// Package pubmed fetches bibliographic records from the NCBI E-utilities API.
//
// The Client performs two operations against the PubMed database: a term
// search returning matching PMIDs (esearch) and a batched retrieval of full
// records for a PMID list (efetch). FetchAbstracts combines both and
// normalizes the raw records into core.PaperRecord values, silently dropping
// records that lack a title or abstract body.
//
// NCBI's usage policy requires callers to identify themselves; a contact
// email is mandatory when constructing a Client and is sent with every
// request along with a tool name.
package pubmed
