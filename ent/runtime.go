// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"
	"visitor-iq/ent/buyer"
	"visitor-iq/ent/company"
	"visitor-iq/ent/fingerprint"
	"visitor-iq/ent/identitylink"
	"visitor-iq/ent/merchant"
	"visitor-iq/ent/schema"

	"github.com/google/uuid"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	buyerFields := schema.Buyer{}.Fields()
	_ = buyerFields
	// buyerDescEmail is the schema descriptor for email field.
	buyerDescEmail := buyerFields[2].Descriptor()
	// buyer.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	buyer.EmailValidator = func() func(string) error {
		validators := buyerDescEmail.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(email string) error {
			for _, fn := range fns {
				if err := fn(email); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// buyerDescName is the schema descriptor for name field.
	buyerDescName := buyerFields[5].Descriptor()
	// buyer.NameValidator is a validator for the "name" field. It is called by the builders before save.
	buyer.NameValidator = buyerDescName.Validators[0].(func(string) error)
	// buyerDescCreatedAt is the schema descriptor for created_at field.
	buyerDescCreatedAt := buyerFields[6].Descriptor()
	// buyer.DefaultCreatedAt holds the default value on creation for the created_at field.
	buyer.DefaultCreatedAt = buyerDescCreatedAt.Default.(func() time.Time)
	// buyerDescID is the schema descriptor for id field.
	buyerDescID := buyerFields[0].Descriptor()
	// buyer.DefaultID holds the default value on creation for the id field.
	buyer.DefaultID = buyerDescID.Default.(func() uuid.UUID)
	companyFields := schema.Company{}.Fields()
	_ = companyFields
	// companyDescName is the schema descriptor for name field.
	companyDescName := companyFields[1].Descriptor()
	// company.NameValidator is a validator for the "name" field. It is called by the builders before save.
	company.NameValidator = func() func(string) error {
		validators := companyDescName.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(name string) error {
			for _, fn := range fns {
				if err := fn(name); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// companyDescDomain is the schema descriptor for domain field.
	companyDescDomain := companyFields[2].Descriptor()
	// company.DomainValidator is a validator for the "domain" field. It is called by the builders before save.
	company.DomainValidator = companyDescDomain.Validators[0].(func(string) error)
	// companyDescCreatedAt is the schema descriptor for created_at field.
	companyDescCreatedAt := companyFields[3].Descriptor()
	// company.DefaultCreatedAt holds the default value on creation for the created_at field.
	company.DefaultCreatedAt = companyDescCreatedAt.Default.(func() time.Time)
	// companyDescID is the schema descriptor for id field.
	companyDescID := companyFields[0].Descriptor()
	// company.DefaultID holds the default value on creation for the id field.
	company.DefaultID = companyDescID.Default.(func() uuid.UUID)
	fingerprintFields := schema.Fingerprint{}.Fields()
	_ = fingerprintFields
	// fingerprintDescFpHash is the schema descriptor for fp_hash field.
	fingerprintDescFpHash := fingerprintFields[2].Descriptor()
	// fingerprint.FpHashValidator is a validator for the "fp_hash" field. It is called by the builders before save.
	fingerprint.FpHashValidator = func() func(string) error {
		validators := fingerprintDescFpHash.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(fp_hash string) error {
			for _, fn := range fns {
				if err := fn(fp_hash); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// fingerprintDescCanvasHash is the schema descriptor for canvas_hash field.
	fingerprintDescCanvasHash := fingerprintFields[3].Descriptor()
	// fingerprint.CanvasHashValidator is a validator for the "canvas_hash" field. It is called by the builders before save.
	fingerprint.CanvasHashValidator = fingerprintDescCanvasHash.Validators[0].(func(string) error)
	// fingerprintDescWebglHash is the schema descriptor for webgl_hash field.
	fingerprintDescWebglHash := fingerprintFields[4].Descriptor()
	// fingerprint.WebglHashValidator is a validator for the "webgl_hash" field. It is called by the builders before save.
	fingerprint.WebglHashValidator = fingerprintDescWebglHash.Validators[0].(func(string) error)
	// fingerprintDescAudioHash is the schema descriptor for audio_hash field.
	fingerprintDescAudioHash := fingerprintFields[5].Descriptor()
	// fingerprint.AudioHashValidator is a validator for the "audio_hash" field. It is called by the builders before save.
	fingerprint.AudioHashValidator = fingerprintDescAudioHash.Validators[0].(func(string) error)
	// fingerprintDescUserAgent is the schema descriptor for user_agent field.
	fingerprintDescUserAgent := fingerprintFields[6].Descriptor()
	// fingerprint.UserAgentValidator is a validator for the "user_agent" field. It is called by the builders before save.
	fingerprint.UserAgentValidator = fingerprintDescUserAgent.Validators[0].(func(string) error)
	// fingerprintDescPlatform is the schema descriptor for platform field.
	fingerprintDescPlatform := fingerprintFields[7].Descriptor()
	// fingerprint.PlatformValidator is a validator for the "platform" field. It is called by the builders before save.
	fingerprint.PlatformValidator = fingerprintDescPlatform.Validators[0].(func(string) error)
	// fingerprintDescLanguage is the schema descriptor for language field.
	fingerprintDescLanguage := fingerprintFields[8].Descriptor()
	// fingerprint.LanguageValidator is a validator for the "language" field. It is called by the builders before save.
	fingerprint.LanguageValidator = fingerprintDescLanguage.Validators[0].(func(string) error)
	// fingerprintDescTimezone is the schema descriptor for timezone field.
	fingerprintDescTimezone := fingerprintFields[9].Descriptor()
	// fingerprint.TimezoneValidator is a validator for the "timezone" field. It is called by the builders before save.
	fingerprint.TimezoneValidator = fingerprintDescTimezone.Validators[0].(func(string) error)
	// fingerprintDescScreenWidth is the schema descriptor for screen_width field.
	fingerprintDescScreenWidth := fingerprintFields[10].Descriptor()
	// fingerprint.DefaultScreenWidth holds the default value on creation for the screen_width field.
	fingerprint.DefaultScreenWidth = fingerprintDescScreenWidth.Default.(int)
	// fingerprintDescScreenHeight is the schema descriptor for screen_height field.
	fingerprintDescScreenHeight := fingerprintFields[11].Descriptor()
	// fingerprint.DefaultScreenHeight holds the default value on creation for the screen_height field.
	fingerprint.DefaultScreenHeight = fingerprintDescScreenHeight.Default.(int)
	// fingerprintDescPixelRatio is the schema descriptor for pixel_ratio field.
	fingerprintDescPixelRatio := fingerprintFields[12].Descriptor()
	// fingerprint.DefaultPixelRatio holds the default value on creation for the pixel_ratio field.
	fingerprint.DefaultPixelRatio = fingerprintDescPixelRatio.Default.(float64)
	// fingerprintDescTouchSupport is the schema descriptor for touch_support field.
	fingerprintDescTouchSupport := fingerprintFields[13].Descriptor()
	// fingerprint.DefaultTouchSupport holds the default value on creation for the touch_support field.
	fingerprint.DefaultTouchSupport = fingerprintDescTouchSupport.Default.(bool)
	// fingerprintDescHardwareConcurrency is the schema descriptor for hardware_concurrency field.
	fingerprintDescHardwareConcurrency := fingerprintFields[14].Descriptor()
	// fingerprint.DefaultHardwareConcurrency holds the default value on creation for the hardware_concurrency field.
	fingerprint.DefaultHardwareConcurrency = fingerprintDescHardwareConcurrency.Default.(int)
	// fingerprintDescDeviceMemory is the schema descriptor for device_memory field.
	fingerprintDescDeviceMemory := fingerprintFields[15].Descriptor()
	// fingerprint.DefaultDeviceMemory holds the default value on creation for the device_memory field.
	fingerprint.DefaultDeviceMemory = fingerprintDescDeviceMemory.Default.(float64)
	// fingerprintDescGpuVendor is the schema descriptor for gpu_vendor field.
	fingerprintDescGpuVendor := fingerprintFields[16].Descriptor()
	// fingerprint.GpuVendorValidator is a validator for the "gpu_vendor" field. It is called by the builders before save.
	fingerprint.GpuVendorValidator = fingerprintDescGpuVendor.Validators[0].(func(string) error)
	// fingerprintDescGpuRenderer is the schema descriptor for gpu_renderer field.
	fingerprintDescGpuRenderer := fingerprintFields[17].Descriptor()
	// fingerprint.GpuRendererValidator is a validator for the "gpu_renderer" field. It is called by the builders before save.
	fingerprint.GpuRendererValidator = fingerprintDescGpuRenderer.Validators[0].(func(string) error)
	// fingerprintDescConnectionType is the schema descriptor for connection_type field.
	fingerprintDescConnectionType := fingerprintFields[18].Descriptor()
	// fingerprint.ConnectionTypeValidator is a validator for the "connection_type" field. It is called by the builders before save.
	fingerprint.ConnectionTypeValidator = fingerprintDescConnectionType.Validators[0].(func(string) error)
	// fingerprintDescCookiesEnabled is the schema descriptor for cookies_enabled field.
	fingerprintDescCookiesEnabled := fingerprintFields[19].Descriptor()
	// fingerprint.DefaultCookiesEnabled holds the default value on creation for the cookies_enabled field.
	fingerprint.DefaultCookiesEnabled = fingerprintDescCookiesEnabled.Default.(bool)
	// fingerprintDescDoNotTrack is the schema descriptor for do_not_track field.
	fingerprintDescDoNotTrack := fingerprintFields[20].Descriptor()
	// fingerprint.DefaultDoNotTrack holds the default value on creation for the do_not_track field.
	fingerprint.DefaultDoNotTrack = fingerprintDescDoNotTrack.Default.(bool)
	// fingerprintDescAdBlock is the schema descriptor for ad_block field.
	fingerprintDescAdBlock := fingerprintFields[21].Descriptor()
	// fingerprint.DefaultAdBlock holds the default value on creation for the ad_block field.
	fingerprint.DefaultAdBlock = fingerprintDescAdBlock.Default.(bool)
	// fingerprintDescIsBot is the schema descriptor for is_bot field.
	fingerprintDescIsBot := fingerprintFields[22].Descriptor()
	// fingerprint.DefaultIsBot holds the default value on creation for the is_bot field.
	fingerprint.DefaultIsBot = fingerprintDescIsBot.Default.(bool)
	// fingerprintDescBotScore is the schema descriptor for bot_score field.
	fingerprintDescBotScore := fingerprintFields[23].Descriptor()
	// fingerprint.DefaultBotScore holds the default value on creation for the bot_score field.
	fingerprint.DefaultBotScore = fingerprintDescBotScore.Default.(float64)
	// fingerprintDescConfidence is the schema descriptor for confidence field.
	fingerprintDescConfidence := fingerprintFields[24].Descriptor()
	// fingerprint.DefaultConfidence holds the default value on creation for the confidence field.
	fingerprint.DefaultConfidence = fingerprintDescConfidence.Default.(float64)
	// fingerprintDescSignalCount is the schema descriptor for signal_count field.
	fingerprintDescSignalCount := fingerprintFields[25].Descriptor()
	// fingerprint.DefaultSignalCount holds the default value on creation for the signal_count field.
	fingerprint.DefaultSignalCount = fingerprintDescSignalCount.Default.(int)
	// fingerprintDescVisitCount is the schema descriptor for visit_count field.
	fingerprintDescVisitCount := fingerprintFields[26].Descriptor()
	// fingerprint.DefaultVisitCount holds the default value on creation for the visit_count field.
	fingerprint.DefaultVisitCount = fingerprintDescVisitCount.Default.(int)
	// fingerprint.VisitCountValidator is a validator for the "visit_count" field. It is called by the builders before save.
	fingerprint.VisitCountValidator = fingerprintDescVisitCount.Validators[0].(func(int) error)
	// fingerprintDescIPAddress is the schema descriptor for ip_address field.
	fingerprintDescIPAddress := fingerprintFields[27].Descriptor()
	// fingerprint.IPAddressValidator is a validator for the "ip_address" field. It is called by the builders before save.
	fingerprint.IPAddressValidator = fingerprintDescIPAddress.Validators[0].(func(string) error)
	// fingerprintDescFirstSeenAt is the schema descriptor for first_seen_at field.
	fingerprintDescFirstSeenAt := fingerprintFields[28].Descriptor()
	// fingerprint.DefaultFirstSeenAt holds the default value on creation for the first_seen_at field.
	fingerprint.DefaultFirstSeenAt = fingerprintDescFirstSeenAt.Default.(func() time.Time)
	// fingerprintDescLastSeenAt is the schema descriptor for last_seen_at field.
	fingerprintDescLastSeenAt := fingerprintFields[29].Descriptor()
	// fingerprint.DefaultLastSeenAt holds the default value on creation for the last_seen_at field.
	fingerprint.DefaultLastSeenAt = fingerprintDescLastSeenAt.Default.(func() time.Time)
	// fingerprintDescID is the schema descriptor for id field.
	fingerprintDescID := fingerprintFields[0].Descriptor()
	// fingerprint.DefaultID holds the default value on creation for the id field.
	fingerprint.DefaultID = fingerprintDescID.Default.(func() uuid.UUID)
	identitylinkFields := schema.IdentityLink{}.Fields()
	_ = identitylinkFields
	// identitylinkDescEmail is the schema descriptor for email field.
	identitylinkDescEmail := identitylinkFields[6].Descriptor()
	// identitylink.EmailValidator is a validator for the "email" field. It is called by the builders before save.
	identitylink.EmailValidator = identitylinkDescEmail.Validators[0].(func(string) error)
	// identitylinkDescSessionID is the schema descriptor for session_id field.
	identitylinkDescSessionID := identitylinkFields[7].Descriptor()
	// identitylink.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	identitylink.SessionIDValidator = identitylinkDescSessionID.Validators[0].(func(string) error)
	// identitylinkDescAuthToken is the schema descriptor for auth_token field.
	identitylinkDescAuthToken := identitylinkFields[8].Descriptor()
	// identitylink.AuthTokenValidator is a validator for the "auth_token" field. It is called by the builders before save.
	identitylink.AuthTokenValidator = identitylinkDescAuthToken.Validators[0].(func(string) error)
	// identitylinkDescMatchConfidence is the schema descriptor for match_confidence field.
	identitylinkDescMatchConfidence := identitylinkFields[10].Descriptor()
	// identitylink.DefaultMatchConfidence holds the default value on creation for the match_confidence field.
	identitylink.DefaultMatchConfidence = identitylinkDescMatchConfidence.Default.(float64)
	// identitylink.MatchConfidenceValidator is a validator for the "match_confidence" field. It is called by the builders before save.
	identitylink.MatchConfidenceValidator = func() func(float64) error {
		validators := identitylinkDescMatchConfidence.Validators
		fns := [...]func(float64) error{
			validators[0].(func(float64) error),
			validators[1].(func(float64) error),
		}
		return func(match_confidence float64) error {
			for _, fn := range fns {
				if err := fn(match_confidence); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// identitylinkDescPageViews is the schema descriptor for page_views field.
	identitylinkDescPageViews := identitylinkFields[11].Descriptor()
	// identitylink.DefaultPageViews holds the default value on creation for the page_views field.
	identitylink.DefaultPageViews = identitylinkDescPageViews.Default.(int)
	// identitylinkDescProductViews is the schema descriptor for product_views field.
	identitylinkDescProductViews := identitylinkFields[12].Descriptor()
	// identitylink.DefaultProductViews holds the default value on creation for the product_views field.
	identitylink.DefaultProductViews = identitylinkDescProductViews.Default.(int)
	// identitylinkDescAddToCarts is the schema descriptor for add_to_carts field.
	identitylinkDescAddToCarts := identitylinkFields[13].Descriptor()
	// identitylink.DefaultAddToCarts holds the default value on creation for the add_to_carts field.
	identitylink.DefaultAddToCarts = identitylinkDescAddToCarts.Default.(int)
	// identitylinkDescTotalOrders is the schema descriptor for total_orders field.
	identitylinkDescTotalOrders := identitylinkFields[14].Descriptor()
	// identitylink.DefaultTotalOrders holds the default value on creation for the total_orders field.
	identitylink.DefaultTotalOrders = identitylinkDescTotalOrders.Default.(int)
	// identitylinkDescTotalRevenue is the schema descriptor for total_revenue field.
	identitylinkDescTotalRevenue := identitylinkFields[15].Descriptor()
	// identitylink.DefaultTotalRevenue holds the default value on creation for the total_revenue field.
	identitylink.DefaultTotalRevenue = identitylinkDescTotalRevenue.Default.(float64)
	// identitylinkDescLastPageURL is the schema descriptor for last_page_url field.
	identitylinkDescLastPageURL := identitylinkFields[16].Descriptor()
	// identitylink.LastPageURLValidator is a validator for the "last_page_url" field. It is called by the builders before save.
	identitylink.LastPageURLValidator = identitylinkDescLastPageURL.Validators[0].(func(string) error)
	// identitylinkDescLastProductViewed is the schema descriptor for last_product_viewed field.
	identitylinkDescLastProductViewed := identitylinkFields[17].Descriptor()
	// identitylink.LastProductViewedValidator is a validator for the "last_product_viewed" field. It is called by the builders before save.
	identitylink.LastProductViewedValidator = identitylinkDescLastProductViewed.Validators[0].(func(string) error)
	// identitylinkDescEngagementScore is the schema descriptor for engagement_score field.
	identitylinkDescEngagementScore := identitylinkFields[18].Descriptor()
	// identitylink.DefaultEngagementScore holds the default value on creation for the engagement_score field.
	identitylink.DefaultEngagementScore = identitylinkDescEngagementScore.Default.(int)
	// identitylinkDescCreatedAt is the schema descriptor for created_at field.
	identitylinkDescCreatedAt := identitylinkFields[21].Descriptor()
	// identitylink.DefaultCreatedAt holds the default value on creation for the created_at field.
	identitylink.DefaultCreatedAt = identitylinkDescCreatedAt.Default.(func() time.Time)
	// identitylinkDescUpdatedAt is the schema descriptor for updated_at field.
	identitylinkDescUpdatedAt := identitylinkFields[22].Descriptor()
	// identitylink.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	identitylink.DefaultUpdatedAt = identitylinkDescUpdatedAt.Default.(func() time.Time)
	// identitylink.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	identitylink.UpdateDefaultUpdatedAt = identitylinkDescUpdatedAt.UpdateDefault.(func() time.Time)
	// identitylinkDescID is the schema descriptor for id field.
	identitylinkDescID := identitylinkFields[0].Descriptor()
	// identitylink.DefaultID holds the default value on creation for the id field.
	identitylink.DefaultID = identitylinkDescID.Default.(func() uuid.UUID)
	merchantFields := schema.Merchant{}.Fields()
	_ = merchantFields
	// merchantDescShopDomain is the schema descriptor for shop_domain field.
	merchantDescShopDomain := merchantFields[1].Descriptor()
	// merchant.ShopDomainValidator is a validator for the "shop_domain" field. It is called by the builders before save.
	merchant.ShopDomainValidator = func() func(string) error {
		validators := merchantDescShopDomain.Validators
		fns := [...]func(string) error{
			validators[0].(func(string) error),
			validators[1].(func(string) error),
		}
		return func(shop_domain string) error {
			for _, fn := range fns {
				if err := fn(shop_domain); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// merchantDescName is the schema descriptor for name field.
	merchantDescName := merchantFields[2].Descriptor()
	// merchant.NameValidator is a validator for the "name" field. It is called by the builders before save.
	merchant.NameValidator = merchantDescName.Validators[0].(func(string) error)
	// merchantDescPasswordHash is the schema descriptor for password_hash field.
	merchantDescPasswordHash := merchantFields[3].Descriptor()
	// merchant.PasswordHashValidator is a validator for the "password_hash" field. It is called by the builders before save.
	merchant.PasswordHashValidator = merchantDescPasswordHash.Validators[0].(func(string) error)
	// merchantDescCreatedAt is the schema descriptor for created_at field.
	merchantDescCreatedAt := merchantFields[4].Descriptor()
	// merchant.DefaultCreatedAt holds the default value on creation for the created_at field.
	merchant.DefaultCreatedAt = merchantDescCreatedAt.Default.(func() time.Time)
	// merchantDescID is the schema descriptor for id field.
	merchantDescID := merchantFields[0].Descriptor()
	// merchant.DefaultID holds the default value on creation for the id field.
	merchant.DefaultID = merchantDescID.Default.(func() uuid.UUID)
}
