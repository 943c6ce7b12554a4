// Package chunk turns structured CV records into embeddable text
// fragments. Bullet-bearing sections are split one chunk per bullet with a
// contextual label (company or project name) prefixed so each fragment
// stands on its own at query time; flat sections emit a single chunk.
// Chunking is deterministic and side-effect free.
package chunk
