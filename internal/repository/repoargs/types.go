package repoargs

type RepositoryName string

const (
	UserRepoName            RepositoryName = "user"
	ProductRepoName         RepositoryName = "product"
	CheckoutSessionRepoName RepositoryName = "checkout_session"
	OrderRepoName           RepositoryName = "order"
	CommissionRepoName      RepositoryName = "commission"
)

// BatchExecQueryRow колбэк результата одного запроса из батча.
type BatchExecQueryRow func(i int, err error)
