package seeds

func SeedAll() error {
	if err := SeedGisIndex(); err != nil {
		return err
	}
	return nil
}
