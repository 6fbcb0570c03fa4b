package setting

type UpsertInput struct {
	Values map[string]string
}
