package usecase

import (
	"crypto/rand"
	"math/big"
)

// passwordPools al menos un carácter de cada grupo.
var passwordPools = []string{
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ",
	"abcdefghijklmnopqrstuvwxyz",
	"0123456789",
	"!@#$",
}

const generatedPasswordLength = 12

// generatePassword contraseña aleatoria para altas masivas sin password.
func generatePassword() (string, error) {
	all := ""
	for _, p := range passwordPools {
		all += p
	}
	out := make([]byte, 0, generatedPasswordLength)
	for _, p := range passwordPools {
		c, err := pick(p)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	for len(out) < generatedPasswordLength {
		c, err := pick(all)
		if err != nil {
			return "", err
		}
		out = append(out, c)
	}
	// Fisher-Yates para que los caracteres obligatorios no queden al inicio
	for i := len(out) - 1; i > 0; i-- {
		j, err := rand.Int(rand.Reader, big.NewInt(int64(i+1)))
		if err != nil {
			return "", err
		}
		out[i], out[j.Int64()] = out[j.Int64()], out[i]
	}
	return string(out), nil
}

func pick(pool string) (byte, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(int64(len(pool))))
	if err != nil {
		return 0, err
	}
	return pool[n.Int64()], nil
}
