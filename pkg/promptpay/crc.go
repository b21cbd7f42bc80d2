package promptpay

// crc16 计算 CRC-16/CCITT-FALSE 校验值
//
// 参数：poly=0x1021, init=0xFFFF，无输入/输出反转，xorout=0x0000
// 校验值 crc16("123456789") == 0x29B1
func crc16(data []byte) uint16 {
	crc := uint16(0xFFFF)
	for _, b := range data {
		crc ^= uint16(b) << 8
		for i := 0; i < 8; i++ {
			if crc&0x8000 != 0 {
				crc = crc<<1 ^ 0x1021
			} else {
				crc <<= 1
			}
		}
	}
	return crc
}
