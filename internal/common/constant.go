package common

// MaxAttachmentSize bounds a single image attachment on both ends.
const MaxAttachmentSize = 10 << 20

// MaxMessageSize is the gRPC message limit for client and server. It leaves
// room for the request fields around the largest attachment.
const MaxMessageSize = MaxAttachmentSize + 1<<20

// LastSyncTimeKey is the app-state key holding the last completed drain pass.
const LastSyncTimeKey = "lastSyncTime"
