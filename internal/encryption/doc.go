// Package encryption streams data through a block cipher in CBC or CTR mode.
// Input is processed in fixed-size chunks so arbitrarily large files never
// need to fit in memory, with PKCS#7 padding handled on the CBC final block.
package encryption
