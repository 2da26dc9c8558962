package record

// Export some internal functions for testing

var Centre = centre
var ChargeStr = chargeStr
var IsWord = func(s, w string) bool { return isWord([]rune(s), w) }
