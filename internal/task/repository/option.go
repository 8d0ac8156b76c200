package repository

// DefaultKey is the storage key the mobile app used for its state blob.
// Stores fall back to it when no key is configured.
const DefaultKey = "@TaskHeroData"
