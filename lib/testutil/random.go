package testutil

import "math/rand"

// RandomString generates a random lowercase string given the pseudo random source.
func RandomString(rndm *rand.Rand, length int) string {
	str := make([]rune, length)
	for i := range str {
		str[i] = 'a' + rune(rndm.Intn(26))
	}
	return string(str)
}

// RandomUrlPath generates a path of `segments` random segments, some of
// which contain characters that need sanitizing before hitting the
// filesystem.
func RandomUrlPath(rndm *rand.Rand, segments int) string {
	const awkward = " %&?#'()"
	var out []rune
	for i := 0; i < segments; i++ {
		out = append(out, '/')
		for _, c := range RandomString(rndm, 8) {
			out = append(out, c)
			if rndm.Intn(4) == 0 {
				out = append(out, rune(awkward[rndm.Intn(len(awkward))]))
			}
		}
	}
	return string(out)
}
