// Package index generates Apache-style autoindex pages for an S3 prefix tree.
//
// An Indexer walks a bucket prefix by prefix. For every level it lists the
// immediate children, renders them as a static HTML table, and writes the
// page back to the same level as "index.html". Levels are visited depth
// first in the order S3 lists them.
package index
