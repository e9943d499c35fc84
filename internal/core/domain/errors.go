package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDependencyKey is returned when a dependency key is empty or malformed.
	ErrInvalidDependencyKey = zerr.New("invalid dependency key, expected group:name:version[:classifier]")

	// ErrDuplicateDependency is returned when the same dependency key appears twice in one set.
	ErrDuplicateDependency = zerr.New("duplicate dependency")

	// ErrMissingArtifactFile is returned when a live dependency does not name its artifact file.
	ErrMissingArtifactFile = zerr.New("live dependency has no artifact file")

	// ErrUnknownAlgorithm is returned when a checksum algorithm is not supported.
	ErrUnknownAlgorithm = zerr.New("unknown checksum algorithm")

	// ErrInvalidChecksum is returned when a checksum is empty or has the wrong digest length.
	ErrInvalidChecksum = zerr.New("invalid checksum")

	// ErrResolutionFailed is returned when the live dependency set cannot be obtained.
	ErrResolutionFailed = zerr.New("failed to resolve live dependencies")

	// ErrFingerprintFailed is returned when a checksum cannot be computed for a live dependency.
	ErrFingerprintFailed = zerr.New("failed to compute dependency checksum")

	// ErrPersistenceFailed is returned when the baseline cannot be durably written.
	ErrPersistenceFailed = zerr.New("failed to write dependency baseline")

	// ErrBuildHalted is returned once a fatal recording failure has been escalated.
	ErrBuildHalted = zerr.New("build halted by dependency recorder")

	// ErrArtifactOpenFailed is returned when an artifact file cannot be opened.
	ErrArtifactOpenFailed = zerr.New("failed to open artifact")

	// ErrArtifactReadFailed is returned when an artifact file cannot be read to the end.
	ErrArtifactReadFailed = zerr.New("failed to read artifact")

	// ErrArtifactNotRegular is returned when an artifact path is a directory or special file.
	ErrArtifactNotRegular = zerr.New("artifact is not a regular file")

	// ErrManifestReadFailed is returned when a dependency manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read dependency manifest")

	// ErrManifestParseFailed is returned when a dependency manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse dependency manifest")

	// ErrModuleFileReadFailed is returned when a go.mod file cannot be read.
	ErrModuleFileReadFailed = zerr.New("failed to read go.mod")

	// ErrModuleFileParseFailed is returned when a go.mod file cannot be parsed.
	ErrModuleFileParseFailed = zerr.New("failed to parse go.mod")

	// ErrModuleCacheNotFound is returned when the Go module cache location cannot be determined.
	ErrModuleCacheNotFound = zerr.New("could not locate Go module cache")

	// ErrArtifactDirReadFailed is returned when an artifact directory cannot be walked.
	ErrArtifactDirReadFailed = zerr.New("failed to read artifact directory")

	// ErrArtifactNameUnparseable is returned when coordinates cannot be derived from a file name.
	ErrArtifactNameUnparseable = zerr.New("cannot derive coordinates from artifact file name")

	// ErrUnknownSourceType is returned when a configured live source type is not supported.
	ErrUnknownSourceType = zerr.New("unknown dependency source type, expected 'manifest', 'gomod' or 'dir'")

	// ErrUnknownBackend is returned when a configured baseline backend is not supported.
	ErrUnknownBackend = zerr.New("unknown baseline backend, expected 'file', 'sql', 's3' or 'redis'")

	// ErrUnknownFormat is returned when a configured baseline file format is not supported.
	ErrUnknownFormat = zerr.New("unknown baseline format, expected 'json', 'yaml' or 'cbor'")

	// ErrUnknownDriver is returned when a configured SQL driver is not supported.
	ErrUnknownDriver = zerr.New("unknown sql driver, expected 'sqlite' or 'postgres'")

	// ErrInvalidConfig is returned when the configuration is semantically invalid.
	ErrInvalidConfig = zerr.New("invalid configuration")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be decoded.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrStoreCreateFailed is returned when the baseline directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create baseline directory")

	// ErrStoreReadFailed is returned when the baseline cannot be read.
	ErrStoreReadFailed = zerr.New("failed to read baseline")

	// ErrStoreWriteFailed is returned when the baseline cannot be written.
	ErrStoreWriteFailed = zerr.New("failed to write baseline")

	// ErrStoreMarshalFailed is returned when the baseline cannot be encoded.
	ErrStoreMarshalFailed = zerr.New("failed to encode baseline")

	// ErrStoreUnmarshalFailed is returned when the baseline cannot be decoded.
	ErrStoreUnmarshalFailed = zerr.New("failed to decode baseline")

	// ErrStoreSchemaInvalid is returned when a baseline document does not match its schema.
	ErrStoreSchemaInvalid = zerr.New("baseline document does not match schema")

	// ErrStoreSealMismatch is returned when a baseline file's seal does not match its entries.
	ErrStoreSealMismatch = zerr.New("baseline seal mismatch, the file was modified outside retrial")

	// ErrStoreUnsupportedVersion is returned when a baseline document has an unknown version.
	ErrStoreUnsupportedVersion = zerr.New("unsupported baseline document version")

	// ErrUnknownOutputFormat is returned when a command output format is not supported.
	ErrUnknownOutputFormat = zerr.New("unknown output format, expected 'text' or 'json'")

	// ErrStoreConnectFailed is returned when a remote baseline backend cannot be reached.
	ErrStoreConnectFailed = zerr.New("failed to connect to baseline backend")
)
