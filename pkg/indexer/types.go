package indexer

type Metadata struct {
	Name         string             `json:"name"`
	Symbol       string             `json:"symbol"`
	Description  string             `json:"description"`
	Image        string             `json:"image"`
	AnimationURL string             `json:"animation_url,omitempty"`
	ExternalURL  string             `json:"external_url,omitempty"`
	Properties   MetadataProperties `json:"properties"`
}

type MetadataProperties struct {
	Artist  string  `json:"artist,omitempty"`
	Title   string  `json:"title,omitempty"`
	Date    string  `json:"date,omitempty"`
	Files   []File  `json:"files,omitempty"`
	Tags    []Tag   `json:"tags,omitempty"`
	Creator Creator `json:"creator,omitempty"`
}

type File struct {
	URI        string  `json:"uri"`
	Type       string  `json:"type"`
	Duration   float64 `json:"duration,omitempty"`
	TrackTitle string  `json:"track_title,omitempty"`
}

type Tag struct {
	Name string `json:"name"`
}

type Creator struct {
	Address string `json:"address"`
}

type Release struct {
	PublicKey   string             `json:"publicKey"`
	Mint        string             `json:"mint"`
	Slug        string             `json:"slug"`
	Datetime    string             `json:"datetime"`
	Publisher   string             `json:"publisher"`
	Hub         string             `json:"hub,omitempty"`
	Metadata    Metadata           `json:"metadata"`
	AccountData ReleaseAccountData `json:"accountData"`
}

type ReleaseAccountData struct {
	Price               uint64 `json:"price"`
	PaymentMint         string `json:"paymentMint"`
	TotalSupply         uint64 `json:"totalSupply"`
	RemainingSupply     uint64 `json:"remainingSupply"`
	SaleCounter         uint64 `json:"saleCounter"`
	ExchangeSaleCounter uint64 `json:"exchangeSaleCounter"`
	ResalePercentage    uint64 `json:"resalePercentage"`
	TotalCollected      uint64 `json:"totalCollected"`
	EditionClosed       bool   `json:"editionClosed"`
}

type RevenueShareRecipient struct {
	RecipientAuthority string `json:"recipientAuthority"`
	PercentShare       uint64 `json:"percentShare"`
	Owed               uint64 `json:"owed"`
	Collected          uint64 `json:"collected"`
}

type Collector struct {
	PublicKey string `json:"publicKey"`
	Datetime  string `json:"datetime,omitempty"`
}

type Hub struct {
	PublicKey   string         `json:"publicKey"`
	Handle      string         `json:"handle"`
	URI         string         `json:"uri"`
	Datetime    string         `json:"datetime"`
	Authority   string         `json:"authority"`
	Data        HubData        `json:"data"`
	AccountData HubAccountData `json:"accountData"`
}

type HubData struct {
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	Image       string `json:"image,omitempty"`
	ExternalURL string `json:"externalUrl,omitempty"`
}

type HubAccountData struct {
	PublishFee      uint64 `json:"publishFee"`
	ReferralFee     uint64 `json:"referralFee"`
	HubSigner       string `json:"hubSigner"`
	HubSignerBump   uint8  `json:"hubSignerBump"`
	TotalFeesEarned uint64 `json:"totalFeesEarned"`
}

type Collaborator struct {
	PublicKey          string `json:"publicKey"`
	Collaborator       string `json:"collaborator"`
	Hub                string `json:"hub"`
	CanAddContent      bool   `json:"canAddContent"`
	CanAddCollaborator bool   `json:"canAddCollaborator"`
	Allowance          int64  `json:"allowance"`
	Datetime           string `json:"datetime"`
}

type Post struct {
	PublicKey string   `json:"publicKey"`
	Hub       string   `json:"hub"`
	Slug      string   `json:"slug"`
	URI       string   `json:"uri"`
	Author    string   `json:"author"`
	Datetime  string   `json:"datetime"`
	Data      PostData `json:"data"`
}

type PostData struct {
	Title     string `json:"title"`
	Body      string `json:"body,omitempty"`
	Reference string `json:"reference,omitempty"`
}

type Exchange struct {
	PublicKey         string `json:"publicKey"`
	Release           string `json:"release"`
	Initializer       string `json:"initializer"`
	Completer         string `json:"completedBy,omitempty"`
	IsSale            bool   `json:"isSale"`
	ExpectedAmount    uint64 `json:"expectedAmount"`
	InitializerAmount uint64 `json:"initializerAmount"`
	Cancelled         bool   `json:"cancelled"`
	CreatedAt         string `json:"createdAt"`
	CompletedAt       string `json:"completedAt,omitempty"`
}

type Account struct {
	PublicKey string `json:"publicKey"`
	Handle    string `json:"handle,omitempty"`
	Image     string `json:"image,omitempty"`
}

type HubContent struct {
	Hub           Hub            `json:"hub"`
	Releases      []Release      `json:"releases"`
	Posts         []Post         `json:"posts"`
	Collaborators []Collaborator `json:"collaborators"`
}

// Transaction ties a confirmed signature to the entity it produced.
type Transaction struct {
	Signature string    `json:"txid"`
	Type      string    `json:"type"`
	Datetime  string    `json:"datetime"`
	Authority string    `json:"authority,omitempty"`
	Release   *Release  `json:"release,omitempty"`
	Hub       *Hub      `json:"hub,omitempty"`
	Post      *Post     `json:"post,omitempty"`
	Exchange  *Exchange `json:"exchange,omitempty"`
}

type SearchResults struct {
	Accounts []Account `json:"accounts"`
	Releases []Release `json:"releases"`
	Hubs     []Hub     `json:"hubs"`
	Posts    []Post    `json:"posts"`
}

type releasesResponse struct {
	Releases []Release `json:"releases"`
}

type releaseResponse struct {
	Release Release `json:"release"`
}

type collectorsResponse struct {
	Collectors []Collector `json:"collectors"`
}

type revenueShareRecipientsResponse struct {
	RevenueShareRecipients []RevenueShareRecipient `json:"revenueShareRecipients"`
}

type hubsResponse struct {
	Hubs []Hub `json:"hubs"`
}

type hubResponse struct {
	Hub Hub `json:"hub"`
}

type collaboratorsResponse struct {
	Collaborators []Collaborator `json:"collaborators"`
}

type postsResponse struct {
	Posts []Post `json:"posts"`
}

type postResponse struct {
	Post Post `json:"post"`
}

type exchangesResponse struct {
	Exchanges []Exchange `json:"exchanges"`
}

type exchangeResponse struct {
	Exchange Exchange `json:"exchange"`
}

type accountResponse struct {
	Account Account `json:"account"`
}

type transactionResponse struct {
	Transaction Transaction `json:"transaction"`
}
