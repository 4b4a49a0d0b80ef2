// Package sources implements the icon source adapters behind the
// driven.IconSource port.
//
// A source returns raw candidates only. It never filters on content,
// never parses markup beyond transport concerns and never decides
// acceptability; that is the ranker's job. Every Search call honours a
// hard deadline so one slow upstream cannot stall a batch.
package sources
