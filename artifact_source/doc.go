// Package artifact_source provides handles onto the remote file stores the import data lives in,
// and the resolver which walks a store's folder hierarchy to find a file.
//
// A [Source] exposes two calls:
// - ListChildren: list the immediate, untrashed children of a folder
// - GetContent: fetch the full text content of a file
//
// Sources provided:
// - [GoogleDriveSource]
// - [GcpStorageBucketSource]
// - [AwsS3BucketSource]
// - [FileSystemSource] (e.g. an unpacked Google Takeout export)
//
// Any source may be wrapped in a [RateLimitedSource] to stay within a provider quota.
//
// ##### Path resolution
//
// [ResolvePath] takes the names of every folder from the root down to the target, and lists the children of
// one folder per name. Names are matched exactly against child display names, and the first match in listing
// order wins. If any name has no match, the result is an error wrapping [ErrNotFound].
// [ResolvePathMap] returns every name which was resolved, plus the synthetic root entry.
//
// Examples:
//
// **file in a nested folder**
//
//	id, err := artifact_source.ResolvePath(ctx, source, []string{"Data", "home_energy_audit", "sense_energy_data_2022.csv"})
//	if artifact_source.IsNotFound(err) {
//		...
//	}
package artifact_source
