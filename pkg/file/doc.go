// Package file reads whole files from local disk or S3.
//
// Both LocalStorage and S3Storage implement Source, which offers Stat and
// ReadFile. The service uses it to load the geolocation database at startup:
//
//	src, err := file.NewS3Storage(ctx, cfg.S3)
//	if err != nil {
//		return err
//	}
//	data, err := src.ReadFile(ctx, "GeoLite2-Country.mmdb")
//
// LocalStorage confines every path to its base directory. S3Storage applies
// the configured per-operation timeout and maps SDK failures onto sentinels
// such as ErrFileNotFound, ErrAccessDenied and ErrBucketNotFound.
package file
