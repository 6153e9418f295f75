package common

// AccessTokenHeaderName is the gRPC metadata key used to carry the
// access token on outbound requests.
const AccessTokenHeaderName = "access_token"

// MaxBatchSize is the maximum number of files accepted in one batch
// upload or batch share. Larger batches are rejected before any file
// is hashed or encrypted.
const MaxBatchSize = 20
