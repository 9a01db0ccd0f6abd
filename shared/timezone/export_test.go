package timezone

func ResolveWith(lookupEnv func(string) (string, bool), readlink func(string) (string, error)) Zone {
	return resolver{lookupEnv: lookupEnv, readlink: readlink}.resolve()
}
