package yml2block

// Version is the current yml2block release version.
const Version = "0.4.0"
