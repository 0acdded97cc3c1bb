package leveling

// DefaultExpLogLimit bounds ledger reads when the caller gives no limit
const DefaultExpLogLimit = 50
