package sdk

// SystemName is sent as Vipps-System-Name on every request.
const SystemName = "Vipps Go SDK"

// Version is the library version sent as Vipps-System-Version.
var Version = "0.9.0"
