package attendance

// DefaultRecentLimit bounds attendance history reads when the caller gives no limit
const DefaultRecentLimit = 10
