// Package ubx provides u-blox UBX packet support.
package ubx

// A UBX packet is framed as:
//
//   0xB5 0x62 | class | id | length (uint16, little-endian) | payload | ck_a ck_b
//
// so the total size is always length + 8. The checksum is an 8-bit
// Fletcher sum over class, id, length and payload.
//
// Over SPI the receiver has no notion of request/response: every transfer
// clocks out a fixed number of bytes, mostly 0xFF filler while the receiver
// has nothing to say. A response therefore starts anywhere in a transfer
// and may spread over several of them. Session reassembles one packet from
// such a sequence of chunks, and Reassembler drives a Session over a
// Transceiver within a bounded number of transfers.
