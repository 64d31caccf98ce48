package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	WalletRepoName      RepositoryName = "wallet"
	TransactionRepoName RepositoryName = "transaction"
	FraudFlagRepoName   RepositoryName = "fraud_flag"
)
